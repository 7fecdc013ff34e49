package service

import "errors"

// Validation failures.
var (
	ErrInvalidWallet   = errors.New("invalid wallet address")
	ErrInvalidQuest    = errors.New("invalid quest id")
	ErrInvalidUsername = errors.New("username must be 3-32 characters of letters, digits, '_' or '-'")
	ErrNotVerified     = errors.New("transaction is not blockchain verified")
)

// Missing records.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrProgressNotFound = errors.New("progress not found")
	ErrStepNotFound     = errors.New("step not found")
	ErrUnknownQuest     = errors.New("unknown quest")
)

var (
	ErrAlreadyCompleted = errors.New("quest already completed")
	ErrUsernameTaken    = errors.New("username already taken")

	// ErrTransientConflict is returned once retries are exhausted. It wraps
	// the last storage error.
	ErrTransientConflict = errors.New("transient conflict, retry later")

	ErrInvalidToken = errors.New("invalid or expired token")
)
