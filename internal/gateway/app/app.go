package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/javer-bank/javer/internal/config"
	"github.com/javer-bank/javer/internal/gateway/handlers"
	"github.com/javer-bank/javer/internal/gateway/monitor"
	"github.com/javer-bank/javer/internal/gateway/storeclient"
	"github.com/javer-bank/javer/pkg/clients"
	"github.com/javer-bank/javer/pkg/logger"
)

// Application is the public gateway: stateless, it validates request shape,
// forwards to the internal store and watches its availability.
type Application struct {
	cfg     *config.Config
	api     *handlers.Handlers
	monitor *monitor.Monitor
}

func New() *Application {
	return &Application{}
}

func (a *Application) Run(ctx context.Context) error {
	cfg := config.New()

	if err := logger.InitLogger(cfg); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	store := storeclient.New(cfg.StoreURL, clients.NewHTTPClient())
	a.cfg = cfg
	a.monitor = monitor.New(store)
	a.api = handlers.New(store, a.monitor)

	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := &http.Server{
		Addr:    cfg.GatewayAddress,
		Handler: router,
	}

	g, ctx := errgroup.WithContext(ctx)
	a.monitor.Start(ctx)

	g.Go(func() error {
		zap.L().Info("starting gateway http server", zap.String("addr", cfg.GatewayAddress))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server exited with error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	zap.L().Info("all systems started successfully")
	return g.Wait()
}
