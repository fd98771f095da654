package clients

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/javer-bank/javer/internal/apperr"
	"github.com/javer-bank/javer/internal/domain"
	"github.com/javer-bank/javer/internal/dto"
	"github.com/javer-bank/javer/internal/gateway/storeclient"
	"github.com/javer-bank/javer/internal/gateway/validation"
	"github.com/javer-bank/javer/pkg/utils"
)

var errInvalidBody = apperr.New(http.StatusUnprocessableEntity, "REQUEST_VALIDATION", "invalid request body")

type ClientHandler struct {
	store *storeclient.Client
}

func New(store *storeclient.Client) *ClientHandler {
	return &ClientHandler{
		store: store,
	}
}

func respondRaw(w http.ResponseWriter, statusCode int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(body)
}

func clientID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, apperr.New(http.StatusUnprocessableEntity, "REQUEST_VALIDATION", "client id must be an integer")
	}
	return id, nil
}

// Create godoc
//
//	@Summary	Register a client
//	@Tags		Clients
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.ClientCreateDTO	true	"Client payload"
//	@Success	201		{object}	dto.ClientResponseDTO
//	@Failure	422		{object}	utils.ErrorResponse	"Validation failure"
//	@Failure	503		{object}	utils.ErrorResponse	"Internal store unavailable"
//	@Router		/clients [post]
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondWithError(w, errInvalidBody)
		return
	}
	var req dto.ClientCreateDTO
	if err := json.Unmarshal(body, &req); err != nil {
		utils.RespondWithError(w, errInvalidBody)
		return
	}

	var c validation.Collector
	c.Phone(req.Phone)
	if err := c.Err(); err != nil {
		utils.RespondWithError(w, err)
		return
	}

	status, respBody, err := h.store.Forward(r.Context(), http.MethodPost, "/clients", body)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	respondRaw(w, status, respBody)
}

// Get godoc
//
//	@Summary	Get a client by id
//	@Tags		Clients
//	@Produce	json
//	@Param		id	path		int	true	"Client id"
//	@Success	200	{object}	dto.ClientResponseDTO
//	@Failure	404	{object}	utils.ErrorResponse	"Client not found"
//	@Router		/clients/{id} [get]
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := clientID(r)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	status, respBody, err := h.store.Forward(r.Context(), http.MethodGet, "/clients/"+strconv.Itoa(id), nil)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	respondRaw(w, status, respBody)
}

// List godoc
//
//	@Summary	List clients
//	@Tags		Clients
//	@Produce	json
//	@Success	200	{array}		dto.ClientResponseDTO
//	@Failure	503	{object}	utils.ErrorResponse	"Internal store unavailable"
//	@Router		/clients [get]
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	status, respBody, err := h.store.Forward(r.Context(), http.MethodGet, "/clients", nil)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	respondRaw(w, status, respBody)
}

// Update godoc
//
//	@Summary	Partially update a client
//	@Tags		Clients
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"Client id"
//	@Param		request	body		dto.ClientUpdateDTO	true	"Fields to update"
//	@Success	200		{object}	dto.ClientResponseDTO
//	@Failure	400		{object}	utils.ErrorResponse	"Negative balance"
//	@Failure	404		{object}	utils.ErrorResponse	"Client not found"
//	@Router		/clients/{id} [put]
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := clientID(r)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondWithError(w, errInvalidBody)
		return
	}
	var req dto.ClientUpdateDTO
	if err := json.Unmarshal(body, &req); err != nil {
		utils.RespondWithError(w, errInvalidBody)
		return
	}

	var c validation.Collector
	if req.Phone != nil {
		c.Phone(*req.Phone)
	}
	if err := c.Err(); err != nil {
		utils.RespondWithError(w, err)
		return
	}

	status, respBody, err := h.store.Forward(r.Context(), http.MethodPut, "/clients/"+strconv.Itoa(id), body)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	respondRaw(w, status, respBody)
}

// Delete godoc
//
//	@Summary	Delete a client
//	@Tags		Clients
//	@Param		id	path	int	true	"Client id"
//	@Success	204
//	@Failure	404	{object}	utils.ErrorResponse	"Client not found"
//	@Router		/clients/{id} [delete]
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := clientID(r)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	if _, _, err := h.store.Forward(r.Context(), http.MethodDelete, "/clients/"+strconv.Itoa(id), nil); err != nil {
		utils.RespondWithError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Score godoc
//
//	@Summary		Credit score projection of a client
//	@Description	Computes the score from the live upstream balance; nothing is persisted.
//	@Tags			Clients
//	@Produce		json
//	@Param			id	path		int	true	"Client id"
//	@Success		200	{object}	dto.ClientScoreResponseDTO
//	@Failure		404	{object}	utils.ErrorResponse	"Client not found"
//	@Failure		503	{object}	utils.ErrorResponse	"Internal store unavailable"
//	@Router			/clients/{id}/credit_score [get]
func (h *ClientHandler) Score(w http.ResponseWriter, r *http.Request) {
	id, err := clientID(r)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	client, err := h.store.GetClient(r.Context(), id)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ClientScoreResponseDTO{
		ClientID:    client.ID,
		CreditScore: domain.CreditScore(client.Balance),
	})
}
