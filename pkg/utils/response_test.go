package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/bountyhub/internal/domain"
)

func TestRespondWithDomainError(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedCode    int
		expectedMessage string
	}{
		{
			name:            "Not found",
			err:             domain.NotFound("bounty", "b1"),
			expectedCode:    http.StatusNotFound,
			expectedMessage: "not found: bounty b1",
		},
		{
			name:            "Forbidden before precondition",
			err:             domain.ErrForbidden,
			expectedCode:    http.StatusForbidden,
			expectedMessage: "precondition failed: caller is not permitted",
		},
		{
			name:            "Precondition",
			err:             domain.Precondition("bounty b1 is DONE"),
			expectedCode:    http.StatusPreconditionFailed,
			expectedMessage: "precondition failed: bounty b1 is DONE",
		},
		{
			name:            "Conflict",
			err:             domain.Conflict("already assigned"),
			expectedCode:    http.StatusConflict,
			expectedMessage: "conflict: already assigned",
		},
		{
			name:            "Validation",
			err:             domain.Invalid("title is required"),
			expectedCode:    http.StatusUnprocessableEntity,
			expectedMessage: "validation failed: title is required",
		},
		{
			name:            "Gateway",
			err:             fmt.Errorf("%w: timeout", domain.ErrGateway),
			expectedCode:    http.StatusBadGateway,
			expectedMessage: "payment gateway error: timeout",
		},
		{
			name:            "Authorized payment left pending by the gateway",
			err:             fmt.Errorf("%w: bounty b1: %w", domain.ErrPaymentPending, fmt.Errorf("%w: timeout", domain.ErrGateway)),
			expectedCode:    http.StatusBadGateway,
			expectedMessage: "payment authorized but not sent, retry with process-instant-payment: payment authorized, transfer not completed: bounty b1: payment gateway error: timeout",
		},
		{
			name:            "Authorized payment left pending by cancellation",
			err:             fmt.Errorf("%w: bounty b1: %w", domain.ErrPaymentPending, context.Canceled),
			expectedCode:    http.StatusBadGateway,
			expectedMessage: "payment authorized but not sent, retry with process-instant-payment: payment authorized, transfer not completed: bounty b1: context canceled",
		},
		{
			name:            "Unknown",
			err:             errors.New("connection reset"),
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			RespondWithDomainError(rr, tt.err)

			assert.Equal(t, tt.expectedCode, rr.Code)
			var resp Response
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.expectedMessage, resp.Message)
		})
	}
}

func TestRespondWithJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	RespondWithJSON(rr, http.StatusCreated, map[string]int{"id": 7})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":7}`, rr.Body.String())
}
