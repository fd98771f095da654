package dto

import (
	"github.com/javer-bank/javer/internal/domain"
	"github.com/shopspring/decimal"
)

type ClientCreateDTO struct {
	Name            string           `json:"name" example:"Leo"`
	Phone           string           `json:"phone" example:"11988887777"`
	IsAccountHolder bool             `json:"is_account_holder" example:"true"`
	Balance         *decimal.Decimal `json:"balance,omitempty" example:"35"`
}

type ClientUpdateDTO struct {
	Name            *string          `json:"name,omitempty"`
	Phone           *string          `json:"phone,omitempty"`
	IsAccountHolder *bool            `json:"is_account_holder,omitempty"`
	Balance         *decimal.Decimal `json:"balance,omitempty"`
}

type ClientResponseDTO struct {
	ID              int             `json:"id" example:"1"`
	Name            string          `json:"name" example:"Leo"`
	Phone           string          `json:"phone" example:"11988887777"`
	IsAccountHolder bool            `json:"is_account_holder" example:"true"`
	Balance         decimal.Decimal `json:"balance" example:"35"`
	CreditScore     decimal.Decimal `json:"credit_score" example:"3.5"`
}

type ClientScoreResponseDTO struct {
	ClientID    int             `json:"client_id" example:"1"`
	CreditScore decimal.Decimal `json:"credit_score" example:"3.5"`
}

func ClientResponse(c *domain.Client) ClientResponseDTO {
	return ClientResponseDTO{
		ID:              c.ID,
		Name:            c.Name,
		Phone:           c.Phone,
		IsAccountHolder: c.IsAccountHolder,
		Balance:         c.Balance,
		CreditScore:     c.CreditScore(),
	}
}
