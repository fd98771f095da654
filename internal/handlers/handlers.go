package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	accounthandlers "github.com/javer-bank/javer/internal/handlers/accounts"
	clienthandlers "github.com/javer-bank/javer/internal/handlers/clients"
	"github.com/javer-bank/javer/internal/service"
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
}

type ClientHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type Handlers struct {
	AccountHandler AccountHandler
	ClientHandler  ClientHandler

	db Pinger
}

func New(s *service.Services, db Pinger) *Handlers {
	return &Handlers{
		AccountHandler: accounthandlers.New(s.AccountService),
		ClientHandler:  clienthandlers.New(s.ClientService),
		db:             db,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/healthz", h.Health)
	r.Route("/accounts", func(r chi.Router) {
		r.Post("/", h.AccountHandler.Create)
		r.Get("/", h.AccountHandler.List)
		r.Post("/operations/deposit", h.AccountHandler.Deposit)
		r.Post("/operations/withdraw", h.AccountHandler.Withdraw)
		r.Put("/{id}/overdraft/register", h.AccountHandler.RegisterOverdraft)
		r.Get("/{agency}/{number}", h.AccountHandler.Get)
		r.Put("/{agency}/{number}", h.AccountHandler.Update)
		r.Delete("/{agency}/{number}/deactivate", h.AccountHandler.Deactivate)
	})
	r.Route("/clients", func(r chi.Router) {
		r.Post("/", h.ClientHandler.Create)
		r.Get("/", h.ClientHandler.List)
		r.Get("/{id}", h.ClientHandler.Get)
		r.Put("/{id}", h.ClientHandler.Update)
		r.Delete("/{id}", h.ClientHandler.Delete)
	})

	return r
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		utils.RespondWithJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
