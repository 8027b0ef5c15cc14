package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pprado/futsal-league/services"
)

func TestMapServiceErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"tournament not found", services.ErrTournamentNotFound, http.StatusNotFound},
		{"match not found", services.ErrMatchNotFound, http.StatusNotFound},
		{"email conflict", services.ErrUserEmailConflict, http.StatusConflict},
		{"duplicate entry", services.ErrEntryConflict, http.StatusConflict},
		{"tournament in use", services.ErrTournamentInUse, http.StatusConflict},
		{"no confirmed entries", services.ErrNoConfirmedEntries, http.StatusBadRequest},
		{"negative score", services.ErrNegativeScore, http.StatusBadRequest},
		{"match locked", services.ErrMatchNotEditable, http.StatusBadRequest},
		{"bad credentials", services.ErrAuthInvalidCredentials, http.StatusUnauthorized},
		{"not the creator", services.ErrNotTournamentCreator, http.StatusForbidden},
		{"not the captain", services.ErrCaptainActionForbidden, http.StatusForbidden},
		{"unsupported format", services.ErrFormatNotImplemented, http.StatusNotImplemented},
		{"upstream failure", services.ErrUpstreamFailure, http.StatusInternalServerError},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			mapServiceErrorToHTTP(rec, req, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
		})
	}
}

func TestMapServiceErrorToHTTPWrappedError(t *testing.T) {
	// Services wrap sentinels with context; the mapping must still see them.
	err := fmt.Errorf("%w: round_robin", services.ErrFormatNotImplemented)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	mapServiceErrorToHTTP(rec, req, err)

	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}
