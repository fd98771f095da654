package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/javer-bank/javer/docs"
	accounthandlers "github.com/javer-bank/javer/internal/gateway/accounts"
	clienthandlers "github.com/javer-bank/javer/internal/gateway/clients"
	"github.com/javer-bank/javer/internal/gateway/storeclient"
	"github.com/javer-bank/javer/pkg/utils"
)

type AccountHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	RegisterOverdraft(w http.ResponseWriter, r *http.Request)
	Score(w http.ResponseWriter, r *http.Request)
}

type ClientHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Score(w http.ResponseWriter, r *http.Request)
}

type ReadyChecker interface {
	Healthy() bool
}

type Handlers struct {
	AccountHandler AccountHandler
	ClientHandler  ClientHandler

	monitor ReadyChecker
}

func New(store *storeclient.Client, monitor ReadyChecker) *Handlers {
	return &Handlers{
		AccountHandler: accounthandlers.New(store),
		ClientHandler:  clienthandlers.New(store),
		monitor:        monitor,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/readyz", h.Ready)
	r.Route("/accounts", func(r chi.Router) {
		r.Post("/", h.AccountHandler.Create)
		r.Get("/", h.AccountHandler.List)
		r.Post("/operations/deposit", h.AccountHandler.Deposit)
		r.Post("/operations/withdraw", h.AccountHandler.Withdraw)
		r.Get("/{agency}/{number}", h.AccountHandler.Get)
		r.Put("/{agency}/{number}", h.AccountHandler.Update)
		r.Delete("/{agency}/{number}/deactivate", h.AccountHandler.Deactivate)
		r.Put("/{agency}/{number}/overdraft/register", h.AccountHandler.RegisterOverdraft)
		r.Get("/{agency}/{number}/credit_score", h.AccountHandler.Score)
	})
	r.Route("/clients", func(r chi.Router) {
		r.Post("/", h.ClientHandler.Create)
		r.Get("/", h.ClientHandler.List)
		r.Get("/{id}", h.ClientHandler.Get)
		r.Put("/{id}", h.ClientHandler.Update)
		r.Delete("/{id}", h.ClientHandler.Delete)
		r.Get("/{id}/credit_score", h.ClientHandler.Score)
	})

	return r
}

func (h *Handlers) Ready(w http.ResponseWriter, r *http.Request) {
	if !h.monitor.Healthy() {
		utils.RespondWithJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
