package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"go.uber.org/zap"

	"github.com/javer-bank/javer/internal/gateway/app"
)

//	@title			Javer Gateway API
//	@version		1.0
//	@description	Public gateway in front of the internal account store

// @host		localhost:8000
// @BasePath	/
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app := app.New()
	if err := app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Gateway stopped with error")
		zap.L().Fatal("Gateway stopped with error: ", zap.Error(err))
	}

	zap.L().Info("All systems closed without errors")
}
