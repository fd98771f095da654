package dto

import (
	"github.com/javer-bank/javer/internal/domain"
	"github.com/shopspring/decimal"
)

type AccountCreateDTO struct {
	Agency           string           `json:"agency" example:"1234"`
	AccountNumber    string           `json:"account_number" example:"99999"`
	HolderName       string           `json:"holder_name" example:"Maria Souza"`
	TaxpayerID       string           `json:"taxpayer_id" example:"12345678901"`
	Phone            string           `json:"phone" example:"11999999999"`
	Email            string           `json:"email" example:"maria@bank.example"`
	IsAccountHolder  bool             `json:"is_account_holder" example:"true"`
	Balance          *decimal.Decimal `json:"balance,omitempty" example:"100.5"`
	OverdraftEnabled bool             `json:"overdraft_enabled" example:"false"`
	OverdraftLimit   *decimal.Decimal `json:"overdraft_limit,omitempty" example:"500"`
}

// AccountUpdateDTO carries a partial update; absent fields stay untouched.
type AccountUpdateDTO struct {
	Agency           *string          `json:"agency,omitempty"`
	AccountNumber    *string          `json:"account_number,omitempty"`
	HolderName       *string          `json:"holder_name,omitempty"`
	TaxpayerID       *string          `json:"taxpayer_id,omitempty"`
	Phone            *string          `json:"phone,omitempty"`
	Email            *string          `json:"email,omitempty"`
	IsAccountHolder  *bool            `json:"is_account_holder,omitempty"`
	Balance          *decimal.Decimal `json:"balance,omitempty"`
	OverdraftEnabled *bool            `json:"overdraft_enabled,omitempty"`
	OverdraftLimit   *decimal.Decimal `json:"overdraft_limit,omitempty"`
}

type AccountResponseDTO struct {
	ID                 int             `json:"id" example:"1"`
	Agency             string          `json:"agency" example:"1234"`
	AccountNumber      string          `json:"account_number" example:"99999"`
	HolderName         string          `json:"holder_name" example:"Maria Souza"`
	TaxpayerID         string          `json:"taxpayer_id" example:"12345678901"`
	Phone              string          `json:"phone" example:"11999999999"`
	Email              string          `json:"email" example:"maria@bank.example"`
	IsAccountHolder    bool            `json:"is_account_holder" example:"true"`
	Balance            decimal.Decimal `json:"balance" example:"100.5"`
	OverdraftEnabled   bool            `json:"overdraft_enabled" example:"false"`
	OverdraftLimit     decimal.Decimal `json:"overdraft_limit" example:"500"`
	AvailableOverdraft decimal.Decimal `json:"available_overdraft" example:"500"`
	CreditScore        decimal.Decimal `json:"credit_score" example:"10.05"`
}

// OperationDTO addresses deposit/withdraw by account key. The amount keeps
// its legacy "saldo" JSON alias for contract compatibility.
type OperationDTO struct {
	Agency        string          `json:"agency" example:"1234"`
	AccountNumber string          `json:"account_number" example:"99999"`
	Amount        decimal.Decimal `json:"saldo" example:"120"`
}

type OverdraftRegisterDTO struct {
	Enabled bool            `json:"enabled" example:"true"`
	Limit   decimal.Decimal `json:"limit" example:"100"`
}

type AccountScoreResponseDTO struct {
	Agency        string          `json:"agency" example:"1234"`
	AccountNumber string          `json:"account_number" example:"99999"`
	CreditScore   decimal.Decimal `json:"credit_score" example:"12.3457"`
}

func AccountResponse(a *domain.Account) AccountResponseDTO {
	return AccountResponseDTO{
		ID:                 a.ID,
		Agency:             a.Agency,
		AccountNumber:      a.AccountNumber,
		HolderName:         a.HolderName,
		TaxpayerID:         a.TaxpayerID,
		Phone:              a.Phone,
		Email:              a.Email,
		IsAccountHolder:    a.IsAccountHolder,
		Balance:            a.Balance,
		OverdraftEnabled:   a.OverdraftEnabled,
		OverdraftLimit:     a.OverdraftLimit,
		AvailableOverdraft: a.AvailableOverdraft(),
		CreditScore:        a.CreditScore(),
	}
}
