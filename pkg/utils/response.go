package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/bountyhub/internal/domain"
)

type Response struct {
	Message string `json:"message"`
}

func RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("can't write response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, Response{Message: message})
}

// StatusOf maps a domain error to the HTTP status reported for it.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrPartial):
		return http.StatusInternalServerError
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrPrecondition):
		return http.StatusPreconditionFailed
	case errors.Is(err, domain.ErrGateway), errors.Is(err, domain.ErrPaymentPending):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// RespondWithDomainError writes err with its mapped status. Unclassified errors are logged and
// reported without detail.
func RespondWithDomainError(w http.ResponseWriter, err error) {
	code := StatusOf(err)
	switch {
	case errors.Is(err, domain.ErrPartial):
		RespondWithError(w, code, "payment sent but not fully recorded, reconcile with mark-paid: "+err.Error())
	case errors.Is(err, domain.ErrPaymentPending):
		RespondWithError(w, code, "payment authorized but not sent, retry with process-instant-payment: "+err.Error())
	case code == http.StatusInternalServerError:
		zap.L().Error("request failed", zap.Error(err))
		RespondWithError(w, code, "Internal server error")
	default:
		RespondWithError(w, code, err.Error())
	}
}
