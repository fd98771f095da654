package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/javer-bank/javer/internal/apperr"
	"github.com/javer-bank/javer/internal/domain"
	"github.com/javer-bank/javer/internal/dto"
	clientservice "github.com/javer-bank/javer/internal/service/clientservice"
	"github.com/javer-bank/javer/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, name, phone string, isAccountHolder bool, balance *decimal.Decimal) (*domain.Client, error)
	Get(ctx context.Context, id int) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Update(ctx context.Context, id int, patch clientservice.Patch) (*domain.Client, error)
	Delete(ctx context.Context, id int) error
}

type ClientHandler struct {
	clientService Service
}

func New(clientService Service) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
	}
}

var errInvalidBody = apperr.New(http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")

func clientID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, apperr.New(http.StatusUnprocessableEntity, "REQUEST_VALIDATION", "client id must be an integer")
	}
	return id, nil
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ClientCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, errInvalidBody)
		return
	}

	client, err := h.clientService.Create(r.Context(), req.Name, req.Phone, req.IsAccountHolder, req.Balance)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.ClientResponse(client))
}

func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := clientID(r)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}

	client, err := h.clientService.Get(r.Context(), id)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ClientResponse(client))
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clientService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}

	response := make([]dto.ClientResponseDTO, 0, len(clients))
	for i := range clients {
		response = append(response, dto.ClientResponse(&clients[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := clientID(r)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}

	var req dto.ClientUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, errInvalidBody)
		return
	}

	client, err := h.clientService.Update(r.Context(), id, clientservice.Patch{
		Name:            req.Name,
		Phone:           req.Phone,
		IsAccountHolder: req.IsAccountHolder,
		Balance:         req.Balance,
	})
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ClientResponse(client))
}

func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := clientID(r)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}

	if err := h.clientService.Delete(r.Context(), id); err != nil {
		utils.RespondWithError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
