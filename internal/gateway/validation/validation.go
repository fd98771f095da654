// Package validation checks the shape of public requests before the gateway
// forwards them. It only ever produces 422 responses with per-field
// messages; every business rule stays in the store.
package validation

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/javer-bank/javer/internal/apperr"
	"github.com/javer-bank/javer/pkg/validate"
)

var messages = map[string]string{
	"agency":         "agency must be a 3 to 4 digit string",
	"account_number": "account number must be a 4 to 8 digit string",
	"taxpayer_id":    "taxpayer id must be an 11 digit string",
	"phone":          "phone must be a 10 to 11 digit string",
	"email":          "email must be a valid address",
	"saldo":          "amount must be greater than zero",
	"balance":        "balance cannot be negative",
	"limit":          "limit cannot be negative",
}

// Collector accumulates field failures so one response reports them all.
type Collector struct {
	fields []apperr.FieldError
}

func (c *Collector) Reject(field string) {
	message, ok := messages[field]
	if !ok {
		message = "invalid value"
	}
	c.fields = append(c.fields, apperr.FieldError{Field: field, Message: message})
}

func (c *Collector) Agency(v string) {
	if !validate.Digits(v, 3, 4) {
		c.Reject("agency")
	}
}

func (c *Collector) AccountNumber(v string) {
	if !validate.Digits(v, 4, 8) {
		c.Reject("account_number")
	}
}

func (c *Collector) TaxpayerID(v string) {
	if !validate.Digits(v, 11, 11) {
		c.Reject("taxpayer_id")
	}
}

func (c *Collector) Phone(v string) {
	if !validate.Digits(v, 10, 11) {
		c.Reject("phone")
	}
}

func (c *Collector) Email(v string) {
	if !validate.Email(v) {
		c.Reject("email")
	}
}

func (c *Collector) Amount(v decimal.Decimal) {
	if !v.IsPositive() {
		c.Reject("saldo")
	}
}

// Err returns nil when every check passed.
func (c *Collector) Err() error {
	if len(c.fields) == 0 {
		return nil
	}
	return apperr.New(http.StatusUnprocessableEntity, "REQUEST_VALIDATION", "invalid request").
		WithFields(c.fields)
}
