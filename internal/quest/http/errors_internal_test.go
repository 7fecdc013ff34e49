package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/aussiebroadwan/questboard/internal/quest/service"
	"github.com/aussiebroadwan/questboard/internal/quest/store"
	"github.com/stretchr/testify/require"
)

func TestAPIErrorMapping(t *testing.T) {
	tests := []struct {
		err       error
		status    int
		code      string
		retryable bool
		known     bool
	}{
		{service.ErrInvalidWallet, http.StatusBadRequest, "invalid_wallet", false, true},
		{service.ErrAlreadyCompleted, http.StatusBadRequest, "already_completed", false, true},
		{fmt.Errorf("wrapped: %w", service.ErrProgressNotFound), http.StatusNotFound, "progress_not_found", false, true},
		{service.ErrUsernameTaken, http.StatusConflict, "username_taken", false, true},
		{service.ErrInvalidToken, http.StatusUnauthorized, "invalid_token", false, true},
		{fmt.Errorf("%w: %w", service.ErrTransientConflict, store.ErrConflict), http.StatusServiceUnavailable, "transient_conflict", true, true},
		{store.ErrUnavailable, http.StatusServiceUnavailable, "unavailable", true, true},
		{context.DeadlineExceeded, http.StatusServiceUnavailable, "unavailable", true, true},
		{errors.New("boom"), http.StatusInternalServerError, "server_error", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			apiErr, known := apiError(tt.err)
			require.Equal(t, tt.known, known)
			require.Equal(t, tt.status, apiErr.StatusCode)
			require.Equal(t, tt.code, apiErr.Code)
			require.Equal(t, tt.retryable, apiErr.Retryable)
		})
	}
}
