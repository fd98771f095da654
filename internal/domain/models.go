package domain

import "github.com/shopspring/decimal"

var scoreRate = decimal.RequireFromString("0.1")

const scorePlaces = 4

type Client struct {
	ID              int             `db:"id"`
	Name            string          `db:"name"`
	Phone           string          `db:"phone"`
	IsAccountHolder bool            `db:"is_account_holder"`
	Balance         decimal.Decimal `db:"balance"`
}

// CreditScore is a read-only projection, never persisted: 10% of the
// balance rounded half-up to 4 places, zero while the balance is negative.
func (c *Client) CreditScore() decimal.Decimal {
	return CreditScore(c.Balance)
}

type Account struct {
	ID               int             `db:"id"`
	Agency           string          `db:"agency"`
	AccountNumber    string          `db:"account_number"`
	HolderName       string          `db:"holder_name"`
	TaxpayerID       string          `db:"taxpayer_id"`
	Phone            string          `db:"phone"`
	Email            string          `db:"email"`
	IsAccountHolder  bool            `db:"is_account_holder"`
	Balance          decimal.Decimal `db:"balance"`
	OverdraftEnabled bool            `db:"overdraft_enabled"`
	OverdraftLimit   decimal.Decimal `db:"overdraft_limit"`
}

// AvailableOverdraft is how much of the overdraft allowance is left. While
// the balance is negative the drawn part is subtracted from the limit,
// floored at zero.
func (a *Account) AvailableOverdraft() decimal.Decimal {
	if a.OverdraftEnabled && a.Balance.IsNegative() {
		available := a.OverdraftLimit.Add(a.Balance)
		if available.IsNegative() {
			return decimal.Zero
		}
		return available
	}
	return a.OverdraftLimit
}

func (a *Account) CreditScore() decimal.Decimal {
	return CreditScore(a.Balance)
}

func CreditScore(balance decimal.Decimal) decimal.Decimal {
	if balance.IsNegative() {
		return decimal.Zero
	}
	return balance.Mul(scoreRate).Round(scorePlaces)
}
