package accounts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/javer-bank/javer/internal/domain"
	"github.com/javer-bank/javer/internal/dto"
	accountservice "github.com/javer-bank/javer/internal/service/accountservice"
)

func NewMock(t *testing.T) (*AccountHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func testAccount() *domain.Account {
	return &domain.Account{
		ID:             1,
		Agency:         "1234",
		AccountNumber:  "99999",
		HolderName:     "Maria Souza",
		TaxpayerID:     "12345678901",
		Phone:          "11999999999",
		Email:          "maria@bank.example",
		Balance:        decimal.NewFromInt(100),
		OverdraftLimit: decimal.NewFromInt(0),
	}
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful creation",
			body: `{"agency":"1234","account_number":"99999","holder_name":"Maria Souza","taxpayer_id":"12345678901","balance":100}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(testAccount(), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `{"agency":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name: "Negative initial balance",
			body: `{"agency":"1234","account_number":"99999","balance":-10}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil, accountservice.ErrNegativeInitialBalance)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "NEGATIVE_INITIAL_BALANCE",
		},
		{
			name: "Duplicate account",
			body: `{"agency":"1234","account_number":"99999"}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil, accountservice.ErrDuplicateAccount)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "DUPLICATE_ACCOUNT",
		},
		{
			name: "Internal server error",
			body: `{"agency":"1234","account_number":"99999"}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Create(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusCreated {
				var body dto.AccountResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "1234", body.Agency)
				assert.Equal(t, "99999", body.AccountNumber)
				assert.True(t, body.Balance.Equal(decimal.NewFromInt(100)))
				assert.True(t, body.CreditScore.Equal(decimal.NewFromInt(10)))
			}
		})
	}
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().
					List(gomock.Any()).
					Return([]domain.Account{*testAccount()}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name: "Empty list",
			prepareMock: func() {
				service.EXPECT().
					List(gomock.Any()).
					Return([]domain.Account{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  0,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					List(gomock.Any()).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/accounts", nil)
			w := httptest.NewRecorder()

			handler.List(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.AccountResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedLen)
			}
		})
	}
}

func TestGetHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().
					GetByKey(gomock.Any(), "1234", "99999").
					Return(testAccount(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Account not found",
			prepareMock: func() {
				service.EXPECT().
					GetByKey(gomock.Any(), "1234", "99999").
					Return(nil, accountservice.ErrAccountNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "ACCOUNT_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/accounts/1234/99999", nil)
			r = withURLParams(r, map[string]string{"agency": "1234", "number": "99999"})
			w := httptest.NewRecorder()

			handler.Get(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestUpdateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful update",
			body: `{"holder_name":"Maria S. Souza"}`,
			prepareMock: func() {
				service.EXPECT().
					Update(gomock.Any(), "1234", "99999", gomock.Any()).
					Return(testAccount(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{"holder_name":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name: "Account not found",
			body: `{"holder_name":"Maria S. Souza"}`,
			prepareMock: func() {
				service.EXPECT().
					Update(gomock.Any(), "1234", "99999", gomock.Any()).
					Return(nil, accountservice.ErrAccountNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "ACCOUNT_NOT_FOUND",
		},
		{
			name: "Unique conflict",
			body: `{"taxpayer_id":"98765432100"}`,
			prepareMock: func() {
				service.EXPECT().
					Update(gomock.Any(), "1234", "99999", gomock.Any()).
					Return(nil, accountservice.ErrUniqueConflict)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "UNIQUE_CONSTRAINT_CONFLICT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPut, "/accounts/1234/99999", bytes.NewBufferString(tt.body))
			r = withURLParams(r, map[string]string{"agency": "1234", "number": "99999"})
			w := httptest.NewRecorder()

			handler.Update(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestDeactivateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful deactivation",
			prepareMock: func() {
				service.EXPECT().
					Deactivate(gomock.Any(), "1234", "99999").
					Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Balance not zero",
			prepareMock: func() {
				service.EXPECT().
					Deactivate(gomock.Any(), "1234", "99999").
					Return(accountservice.ErrBalanceNotZero)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "BALANCE_NOT_ZERO",
		},
		{
			name: "Account not found",
			prepareMock: func() {
				service.EXPECT().
					Deactivate(gomock.Any(), "1234", "99999").
					Return(accountservice.ErrAccountNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "ACCOUNT_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodDelete, "/accounts/1234/99999/deactivate", nil)
			r = withURLParams(r, map[string]string{"agency": "1234", "number": "99999"})
			w := httptest.NewRecorder()

			handler.Deactivate(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestDepositHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful deposit",
			body: `{"agency":"1234","account_number":"99999","saldo":120}`,
			prepareMock: func() {
				service.EXPECT().
					Deposit(gomock.Any(), "1234", "99999", decimal.NewFromInt(120)).
					Return(testAccount(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{"saldo":invalid}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:          "Non-positive amount",
			body:          `{"agency":"1234","account_number":"99999","saldo":0}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "amount must be greater than zero",
		},
		{
			name: "Account not found",
			body: `{"agency":"1234","account_number":"99999","saldo":120}`,
			prepareMock: func() {
				service.EXPECT().
					Deposit(gomock.Any(), "1234", "99999", decimal.NewFromInt(120)).
					Return(nil, accountservice.ErrAccountNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "ACCOUNT_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/accounts/operations/deposit", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Deposit(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestWithdrawHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful withdrawal",
			body: `{"agency":"1234","account_number":"99999","saldo":20}`,
			prepareMock: func() {
				service.EXPECT().
					Withdraw(gomock.Any(), "1234", "99999", decimal.NewFromInt(20)).
					Return(testAccount(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Negative amount",
			body:          `{"agency":"1234","account_number":"99999","saldo":-5}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "amount must be greater than zero",
		},
		{
			name: "Insufficient balance",
			body: `{"agency":"1234","account_number":"99999","saldo":20}`,
			prepareMock: func() {
				service.EXPECT().
					Withdraw(gomock.Any(), "1234", "99999", decimal.NewFromInt(20)).
					Return(nil, accountservice.ErrInsufficientBalance)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "INSUFFICIENT_BALANCE",
		},
		{
			name: "Overdraft limit exceeded",
			body: `{"agency":"1234","account_number":"99999","saldo":20}`,
			prepareMock: func() {
				service.EXPECT().
					Withdraw(gomock.Any(), "1234", "99999", decimal.NewFromInt(20)).
					Return(nil, accountservice.ErrOverdraftExceeded)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "OVERDRAFT_LIMIT_EXCEEDED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/accounts/operations/withdraw", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Withdraw(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestRegisterOverdraftHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		id            string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			id:   "1",
			body: `{"enabled":true,"limit":100}`,
			prepareMock: func() {
				service.EXPECT().
					RegisterOverdraft(gomock.Any(), 1, true, decimal.NewFromInt(100)).
					Return(testAccount(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Non-integer id",
			id:            "abc",
			body:          `{"enabled":true,"limit":100}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "account id must be an integer",
		},
		{
			name:          "Invalid request body",
			id:            "1",
			body:          `{"enabled":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name: "Disable with negative balance",
			id:   "1",
			body: `{"enabled":false,"limit":100}`,
			prepareMock: func() {
				service.EXPECT().
					RegisterOverdraft(gomock.Any(), 1, false, decimal.NewFromInt(100)).
					Return(nil, accountservice.ErrOverdraftNegativeBalance)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "OVERDRAFT_DISABLE_WITH_NEGATIVE_BALANCE",
		},
		{
			name: "Negative limit",
			id:   "1",
			body: `{"enabled":true,"limit":-1}`,
			prepareMock: func() {
				service.EXPECT().
					RegisterOverdraft(gomock.Any(), 1, true, decimal.NewFromInt(-1)).
					Return(nil, accountservice.ErrInvalidOverdraftLimit)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "INVALID_OVERDRAFT_LIMIT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPut, "/accounts/"+tt.id+"/overdraft/register", bytes.NewBufferString(tt.body))
			r = withURLParams(r, map[string]string{"id": tt.id})
			w := httptest.NewRecorder()

			handler.RegisterOverdraft(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}
