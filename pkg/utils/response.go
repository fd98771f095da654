package utils

import (
	"encoding/json"
	"net/http"

	"github.com/javer-bank/javer/internal/apperr"
)

// ErrorResponse is the wire shape of every non-2xx body.
type ErrorResponse struct {
	Detail *apperr.Error `json:"detail"`
}

func RespondWithJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// RespondWithError writes a typed error as {"detail": {...}}; anything
// outside the taxonomy becomes an opaque 500.
func RespondWithError(w http.ResponseWriter, err error) {
	if appErr, ok := apperr.From(err); ok {
		RespondWithJSON(w, appErr.Status, ErrorResponse{Detail: appErr})
		return
	}
	RespondWithJSON(w, http.StatusInternalServerError, ErrorResponse{
		Detail: apperr.New(http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error"),
	})
}
