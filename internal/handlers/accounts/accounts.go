package accounts

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
	accountservice "github.com/javer-bank/javer/internal/service/accountservice"
	"github.com/javer-bank/javer/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, in accountservice.CreateInput) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	GetByKey(ctx context.Context, agency, accountNumber string) (*domain.Account, error)
	Update(ctx context.Context, agency, accountNumber string, patch accountservice.Patch) (*domain.Account, error)
	Deactivate(ctx context.Context, agency, accountNumber string) error
	Deposit(ctx context.Context, agency, accountNumber string, amount decimal.Decimal) (*domain.Account, error)
	Withdraw(ctx context.Context, agency, accountNumber string, amount decimal.Decimal) (*domain.Account, error)
	RegisterOverdraft(ctx context.Context, id int, enabled bool, limit decimal.Decimal) (*domain.Account, error)
}

type AccountHandler struct {
	accountService Service
}

func New(accountService Service) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

var errInvalidBody = apperr.New(http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")

func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.AccountCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, errInvalidBody)
		return
	}

	account, err := h.accountService.Create(r.Context(), accountservice.CreateInput{
		Agency:           req.Agency,
		AccountNumber:    req.AccountNumber,
		HolderName:       req.HolderName,
		TaxpayerID:       req.TaxpayerID,
		Phone:            req.Phone,
		Email:            req.Email,
		IsAccountHolder:  req.IsAccountHolder,
		Balance:          req.Balance,
		OverdraftEnabled: req.OverdraftEnabled,
		OverdraftLimit:   req.OverdraftLimit,
	})
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.AccountResponse(account))
}

func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}

	response := make([]dto.AccountResponseDTO, 0, len(accounts))
	for i := range accounts {
		response = append(response, dto.AccountResponse(&accounts[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	agency := chi.URLParam(r, "agency")
	number := chi.URLParam(r, "number")

	account, err := h.accountService.GetByKey(r.Context(), agency, number)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AccountResponse(account))
}

func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	agency := chi.URLParam(r, "agency")
	number := chi.URLParam(r, "number")

	var req dto.AccountUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, errInvalidBody)
		return
	}

	account, err := h.accountService.Update(r.Context(), agency, number, accountservice.Patch{
		Agency:           req.Agency,
		AccountNumber:    req.AccountNumber,
		HolderName:       req.HolderName,
		TaxpayerID:       req.TaxpayerID,
		Phone:            req.Phone,
		Email:            req.Email,
		IsAccountHolder:  req.IsAccountHolder,
		Balance:          req.Balance,
		OverdraftEnabled: req.OverdraftEnabled,
		OverdraftLimit:   req.OverdraftLimit,
	})
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AccountResponse(account))
}

func (h *AccountHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	agency := chi.URLParam(r, "agency")
	number := chi.URLParam(r, "number")

	if err := h.accountService.Deactivate(r.Context(), agency, number); err != nil {
		utils.RespondWithError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AccountHandler) operation(w http.ResponseWriter, r *http.Request, apply func(ctx context.Context, agency, number string, amount decimal.Decimal) (*domain.Account, error)) {
	var req dto.OperationDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, errInvalidBody)
		return
	}

	if !req.Amount.IsPositive() {
		err := apperr.New(http.StatusUnprocessableEntity, "REQUEST_VALIDATION", "invalid request").
			WithFields([]apperr.FieldError{{Field: "saldo", Message: "amount must be greater than zero"}})
		utils.RespondWithError(w, err)
		return
	}

	account, err := apply(r.Context(), req.Agency, req.AccountNumber, req.Amount)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AccountResponse(account))
}

func (h *AccountHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.operation(w, r, h.accountService.Deposit)
}

func (h *AccountHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.operation(w, r, h.accountService.Withdraw)
}

func (h *AccountHandler) RegisterOverdraft(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, apperr.New(http.StatusUnprocessableEntity, "REQUEST_VALIDATION", "account id must be an integer"))
		return
	}

	var req dto.OverdraftRegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, errInvalidBody)
		return
	}

	account, err := h.accountService.RegisterOverdraft(r.Context(), id, req.Enabled, req.Limit)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AccountResponse(account))
}
