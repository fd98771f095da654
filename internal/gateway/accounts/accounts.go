package accounts

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

var (
	errInvalidBody    = apperr.New(http.StatusUnprocessableEntity, "REQUEST_VALIDATION", "invalid request body")
	errNegativeCreate = apperr.New(http.StatusUnprocessableEntity, "NEGATIVE_INITIAL_BALANCE", "cannot create account with negative balance")
	errBalanceNotZero = apperr.New(http.StatusConflict, "BALANCE_NOT_ZERO", "account can only be deactivated with a zero balance")
)

type AccountHandler struct {
	store *storeclient.Client
}

func New(store *storeclient.Client) *AccountHandler {
	return &AccountHandler{
		store: store,
	}
}

// respondRaw relays an upstream body untouched.
func respondRaw(w http.ResponseWriter, statusCode int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(body)
}

// Create godoc
//
//	@Summary		Open an account
//	@Description	Validate the payload shape and forward the account creation to the internal store.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AccountCreateDTO	true	"Account payload"
//	@Success		201		{object}	dto.AccountResponseDTO	"Created account"
//	@Failure		409		{object}	utils.ErrorResponse		"Duplicate account or taxpayer id"
//	@Failure		422		{object}	utils.ErrorResponse		"Validation failure"
//	@Failure		503		{object}	utils.ErrorResponse		"Internal store unavailable"
//	@Router			/accounts [post]
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondWithError(w, errInvalidBody)
		return
	}
	var req dto.AccountCreateDTO
	if err := json.Unmarshal(body, &req); err != nil {
		utils.RespondWithError(w, errInvalidBody)
		return
	}

	var c validation.Collector
	c.Agency(req.Agency)
	c.AccountNumber(req.AccountNumber)
	c.TaxpayerID(req.TaxpayerID)
	c.Phone(req.Phone)
	c.Email(req.Email)
	if err := c.Err(); err != nil {
		utils.RespondWithError(w, err)
		return
	}
	// short-circuit before touching the store
	if req.Balance != nil && req.Balance.IsNegative() {
		utils.RespondWithError(w, errNegativeCreate)
		return
	}

	status, respBody, err := h.store.Forward(r.Context(), http.MethodPost, "/accounts", body)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	respondRaw(w, status, respBody)
}

// List godoc
//
//	@Summary	List accounts
//	@Tags		Accounts
//	@Produce	json
//	@Success	200	{array}		dto.AccountResponseDTO
//	@Failure	503	{object}	utils.ErrorResponse	"Internal store unavailable"
//	@Router		/accounts [get]
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	status, respBody, err := h.store.Forward(r.Context(), http.MethodGet, "/accounts", nil)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	respondRaw(w, status, respBody)
}

// Get godoc
//
//	@Summary	Get an account by agency and number
//	@Tags		Accounts
//	@Produce	json
//	@Param		agency	path		string	true	"Agency"
//	@Param		number	path		string	true	"Account number"
//	@Success	200		{object}	dto.AccountResponseDTO
//	@Failure	404		{object}	utils.ErrorResponse	"Account not found"
//	@Failure	503		{object}	utils.ErrorResponse	"Internal store unavailable"
//	@Router		/accounts/{agency}/{number} [get]
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	agency := chi.URLParam(r, "agency")
	number := chi.URLParam(r, "number")
	status, respBody, err := h.store.Forward(r.Context(), http.MethodGet, "/accounts/"+agency+"/"+number, nil)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	respondRaw(w, status, respBody)
}

// Update godoc
//
//	@Summary		Partially update an account
//	@Description	Only the supplied fields are changed; omitted fields stay untouched.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			agency	path		string					true	"Agency"
//	@Param			number	path		string					true	"Account number"
//	@Param			request	body		dto.AccountUpdateDTO	true	"Fields to update"
//	@Success		200		{object}	dto.AccountResponseDTO
//	@Failure		404		{object}	utils.ErrorResponse	"Account not found"
//	@Failure		409		{object}	utils.ErrorResponse	"Unique constraint conflict"
//	@Failure		422		{object}	utils.ErrorResponse	"Validation failure"
//	@Router			/accounts/{agency}/{number} [put]
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	agency := chi.URLParam(r, "agency")
	number := chi.URLParam(r, "number")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondWithError(w, errInvalidBody)
		return
	}
	var req dto.AccountUpdateDTO
	if err := json.Unmarshal(body, &req); err != nil {
		utils.RespondWithError(w, errInvalidBody)
		return
	}

	var c validation.Collector
	if req.Agency != nil {
		c.Agency(*req.Agency)
	}
	if req.AccountNumber != nil {
		c.AccountNumber(*req.AccountNumber)
	}
	if req.TaxpayerID != nil {
		c.TaxpayerID(*req.TaxpayerID)
	}
	if req.Phone != nil {
		c.Phone(*req.Phone)
	}
	if req.Email != nil {
		c.Email(*req.Email)
	}
	if err := c.Err(); err != nil {
		utils.RespondWithError(w, err)
		return
	}

	status, respBody, err := h.store.Forward(r.Context(), http.MethodPut, "/accounts/"+agency+"/"+number, body)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	respondRaw(w, status, respBody)
}

// Deactivate godoc
//
//	@Summary		Deactivate an account
//	@Description	Removes the account when its balance is exactly zero.
//	@Tags			Accounts
//	@Param			agency	path	string	true	"Agency"
//	@Param			number	path	string	true	"Account number"
//	@Success		204
//	@Failure		404	{object}	utils.ErrorResponse	"Account not found"
//	@Failure		409	{object}	utils.ErrorResponse	"Balance not zero"
//	@Failure		503	{object}	utils.ErrorResponse	"Internal store unavailable"
//	@Router			/accounts/{agency}/{number}/deactivate [delete]
func (h *AccountHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	agency := chi.URLParam(r, "agency")
	number := chi.URLParam(r, "number")

	account, err := h.store.GetAccount(r.Context(), agency, number)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	if !account.Balance.IsZero() {
		utils.RespondWithError(w, errBalanceNotZero)
		return
	}

	if _, _, err := h.store.Forward(r.Context(), http.MethodDelete, "/accounts/"+agency+"/"+number+"/deactivate", nil); err != nil {
		utils.RespondWithError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AccountHandler) operation(w http.ResponseWriter, r *http.Request, path string) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondWithError(w, errInvalidBody)
		return
	}
	var req dto.OperationDTO
	if err := json.Unmarshal(body, &req); err != nil {
		utils.RespondWithError(w, errInvalidBody)
		return
	}

	var c validation.Collector
	c.Agency(req.Agency)
	c.AccountNumber(req.AccountNumber)
	c.Amount(req.Amount)
	if err := c.Err(); err != nil {
		utils.RespondWithError(w, err)
		return
	}

	status, respBody, err := h.store.Forward(r.Context(), http.MethodPost, path, body)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	respondRaw(w, status, respBody)
}

// Deposit godoc
//
//	@Summary	Deposit into an account
//	@Tags		Operations
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.OperationDTO	true	"Deposit payload, amount under the saldo key"
//	@Success	200		{object}	dto.AccountResponseDTO
//	@Failure	404		{object}	utils.ErrorResponse	"Account not found"
//	@Failure	422		{object}	utils.ErrorResponse	"Validation failure"
//	@Router		/accounts/operations/deposit [post]
func (h *AccountHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.operation(w, r, "/accounts/operations/deposit")
}

// Withdraw godoc
//
//	@Summary	Withdraw from an account
//	@Tags		Operations
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.OperationDTO	true	"Withdrawal payload, amount under the saldo key"
//	@Success	200		{object}	dto.AccountResponseDTO
//	@Failure	404		{object}	utils.ErrorResponse	"Account not found"
//	@Failure	409		{object}	utils.ErrorResponse	"Insufficient balance or overdraft limit exceeded"
//	@Failure	422		{object}	utils.ErrorResponse	"Validation failure"
//	@Router		/accounts/operations/withdraw [post]
func (h *AccountHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.operation(w, r, "/accounts/operations/withdraw")
}

// RegisterOverdraft godoc
//
//	@Summary		Register the overdraft settings of an account
//	@Description	Resolves the internal account id by agency and number, then applies the overdraft change. The store addresses overdraft by id only.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			agency	path		string					true	"Agency"
//	@Param			number	path		string					true	"Account number"
//	@Param			request	body		dto.OverdraftRegisterDTO	true	"Overdraft settings"
//	@Success		200		{object}	dto.AccountResponseDTO
//	@Failure		404		{object}	utils.ErrorResponse	"Account not found"
//	@Failure		409		{object}	utils.ErrorResponse	"Disable with negative balance"
//	@Failure		422		{object}	utils.ErrorResponse	"Invalid limit"
//	@Router			/accounts/{agency}/{number}/overdraft/register [put]
func (h *AccountHandler) RegisterOverdraft(w http.ResponseWriter, r *http.Request) {
	agency := chi.URLParam(r, "agency")
	number := chi.URLParam(r, "number")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondWithError(w, errInvalidBody)
		return
	}
	var req dto.OverdraftRegisterDTO
	if err := json.Unmarshal(body, &req); err != nil {
		utils.RespondWithError(w, errInvalidBody)
		return
	}

	account, err := h.store.GetAccount(r.Context(), agency, number)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}

	status, respBody, err := h.store.Forward(r.Context(), http.MethodPut, accountOverdraftPath(account.ID), body)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	respondRaw(w, status, respBody)
}

func accountOverdraftPath(id int) string {
	return "/accounts/" + strconv.Itoa(id) + "/overdraft/register"
}

// Score godoc
//
//	@Summary		Credit score projection of an account
//	@Description	Computes the score from the live upstream balance; nothing is persisted.
//	@Tags			Accounts
//	@Produce		json
//	@Param			agency	path		string	true	"Agency"
//	@Param			number	path		string	true	"Account number"
//	@Success		200		{object}	dto.AccountScoreResponseDTO
//	@Failure		404		{object}	utils.ErrorResponse	"Account not found"
//	@Failure		503		{object}	utils.ErrorResponse	"Internal store unavailable"
//	@Router			/accounts/{agency}/{number}/credit_score [get]
func (h *AccountHandler) Score(w http.ResponseWriter, r *http.Request) {
	agency := chi.URLParam(r, "agency")
	number := chi.URLParam(r, "number")

	account, err := h.store.GetAccount(r.Context(), agency, number)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AccountScoreResponseDTO{
		Agency:        account.Agency,
		AccountNumber: account.AccountNumber,
		CreditScore:   domain.CreditScore(account.Balance),
	})
}
