package questsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/questboard/pkg/httpx"
)

const (
	ErrorCodeInvalidRequest    = "invalid_request"
	ErrorCodeInvalidWallet     = "invalid_wallet"
	ErrorCodeInvalidQuest      = "invalid_quest"
	ErrorCodeInvalidUsername   = "invalid_username"
	ErrorCodeNotVerified       = "not_verified"
	ErrorCodeUserNotFound      = "user_not_found"
	ErrorCodeProgressNotFound  = "progress_not_found"
	ErrorCodeStepNotFound      = "step_not_found"
	ErrorCodeUnknownQuest      = "unknown_quest"
	ErrorCodeAlreadyCompleted  = "already_completed"
	ErrorCodeUsernameTaken     = "username_taken"
	ErrorCodeTransientConflict = "transient_conflict"
	ErrorCodeUnavailable       = "unavailable"
	ErrorCodeServerError       = "server_error"
	ErrorCodeInvalidToken      = "invalid_token"
	ErrorCodeInsufficientScope = "insufficient_scope"
	ErrorCodeRateLimited       = "rate_limited"
)

// APIError is the error body every endpoint returns. The server writes it
// with WriteError and the client decodes it back, so errors.Is against the
// predefined values below works on both sides.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"error"`
	Retryable  bool   `json:"retryable,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.StatusCode, e.Message)
}

// Is matches on Code so a decoded error compares equal to its sentinel.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	return ok && t.Code == e.Code
}

func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteError(w, e.StatusCode, e.Code, e.Message, e.Retryable)
}

// WithMessage returns a copy carrying msg.
func (e *APIError) WithMessage(msg string) *APIError {
	c := *e
	c.Message = msg
	return &c
}

// IsRetryable reports whether err is an API error the server marked as safe
// to retry.
func IsRetryable(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Retryable
}

func NewAPIError(statusCode int, code, message string) *APIError {
	return &APIError{StatusCode: statusCode, Code: code, Message: message}
}

var (
	ErrInvalidRequest  = NewAPIError(http.StatusBadRequest, ErrorCodeInvalidRequest, "Invalid request")
	ErrInvalidWallet   = NewAPIError(http.StatusBadRequest, ErrorCodeInvalidWallet, "Invalid wallet address")
	ErrInvalidQuest    = NewAPIError(http.StatusBadRequest, ErrorCodeInvalidQuest, "Invalid quest id")
	ErrInvalidUsername = NewAPIError(http.StatusBadRequest, ErrorCodeInvalidUsername, "Username must be 3-32 characters of letters, digits, '_' or '-'")
	ErrNotVerified     = NewAPIError(http.StatusBadRequest, ErrorCodeNotVerified, "Transaction is not blockchain verified")

	// ErrAlreadyCompleted is a 400 so clients may treat a replay as success.
	ErrAlreadyCompleted = NewAPIError(http.StatusBadRequest, ErrorCodeAlreadyCompleted, "Quest already completed")

	ErrUserNotFound     = NewAPIError(http.StatusNotFound, ErrorCodeUserNotFound, "User not found")
	ErrProgressNotFound = NewAPIError(http.StatusNotFound, ErrorCodeProgressNotFound, "Progress not found. Please start the quest first.")
	ErrStepNotFound     = NewAPIError(http.StatusNotFound, ErrorCodeStepNotFound, "Step not found")
	ErrUnknownQuest     = NewAPIError(http.StatusNotFound, ErrorCodeUnknownQuest, "Quest not found")

	ErrUsernameTaken = NewAPIError(http.StatusConflict, ErrorCodeUsernameTaken, "Username already taken")

	ErrInvalidToken = NewAPIError(http.StatusUnauthorized, ErrorCodeInvalidToken, "Invalid or expired token")

	ErrTransientConflict = &APIError{
		StatusCode: http.StatusServiceUnavailable,
		Code:       ErrorCodeTransientConflict,
		Message:    "Too much contention, please retry",
		Retryable:  true,
	}
	ErrUnavailable = &APIError{
		StatusCode: http.StatusServiceUnavailable,
		Code:       ErrorCodeUnavailable,
		Message:    "Service temporarily unavailable",
		Retryable:  true,
	}
	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrorCodeServerError,
		Message:    "Internal server error",
		Retryable:  true,
	}
)

// parseErrorResponse turns a non-2xx response into an *APIError when the
// body has the expected shape.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Code != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       errResp.Code,
			Message:    errResp.Error,
			Retryable:  errResp.Retryable,
		}
	}

	return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
}
