// Package apperr carries the error taxonomy shared by the store and the
// gateway: every business failure is a status code, a machine-readable code
// and a human message, serialized on the wire as {"detail": {...}}.
package apperr

import (
	"errors"
	"fmt"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Error struct {
	Status  int          `json:"status"`
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WithFields returns a copy carrying per-field validation messages.
func (e *Error) WithFields(fields []FieldError) *Error {
	return &Error{Status: e.Status, Code: e.Code, Message: e.Message, Errors: fields}
}

// From unwraps err into the taxonomy. The second return is false for
// untyped errors, which callers should surface as an internal error.
func From(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
