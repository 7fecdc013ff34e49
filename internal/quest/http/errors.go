package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/questboard/internal/quest/service"
	"github.com/aussiebroadwan/questboard/pkg/questsdk"
	"github.com/aussiebroadwan/questboard/pkg/retryx"
	"github.com/aussiebroadwan/questboard/pkg/slogx"
)

// apiError maps a service error onto its response. Unknown errors become a
// 500 and the second return value reports that.
func apiError(err error) (*questsdk.APIError, bool) {
	switch {
	case errors.Is(err, service.ErrInvalidWallet):
		return questsdk.ErrInvalidWallet, true
	case errors.Is(err, service.ErrInvalidQuest):
		return questsdk.ErrInvalidQuest, true
	case errors.Is(err, service.ErrInvalidUsername):
		return questsdk.ErrInvalidUsername, true
	case errors.Is(err, service.ErrNotVerified):
		return questsdk.ErrNotVerified, true

	case errors.Is(err, service.ErrUserNotFound):
		return questsdk.ErrUserNotFound, true
	case errors.Is(err, service.ErrProgressNotFound):
		return questsdk.ErrProgressNotFound, true
	case errors.Is(err, service.ErrStepNotFound):
		return questsdk.ErrStepNotFound, true
	case errors.Is(err, service.ErrUnknownQuest):
		return questsdk.ErrUnknownQuest, true

	case errors.Is(err, service.ErrAlreadyCompleted):
		return questsdk.ErrAlreadyCompleted, true
	case errors.Is(err, service.ErrUsernameTaken):
		return questsdk.ErrUsernameTaken, true
	case errors.Is(err, service.ErrInvalidToken):
		return questsdk.ErrInvalidToken, true

	case errors.Is(err, service.ErrTransientConflict):
		return questsdk.ErrTransientConflict, true
	case retryx.IsTransient(err), errors.Is(err, context.DeadlineExceeded):
		return questsdk.ErrUnavailable, true
	}
	return questsdk.ErrServerError, false
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr, known := apiError(err)
	if !known {
		slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))
	} else if apiErr.Retryable {
		slogx.FromContext(r.Context()).Warn("request failed, retryable", slog.Any("error", err))
	}
	apiErr.WriteError(w)
}

// questIDParam reads the {questId} path value.
func questIDParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(r.PathValue("questId"))
	if err != nil || id <= 0 {
		return 0, service.ErrInvalidQuest
	}
	return id, nil
}
