package model

import "errors"

var (
	ErrInvalidUserID = errors.New("invalid user id")
	// ErrAlreadySignedIn is returned when a session tries to switch accounts
	// without signing out first.
	ErrAlreadySignedIn = errors.New("session already signed in as another user")
	ErrNotSignedIn     = errors.New("session is not signed in")
	ErrInvalidSession  = errors.New("invalid session")
)

// Error codes returned in API responses
const (
	ErrCodeInvalidUserID   = "INVALID_USER_ID"
	ErrCodeAlreadySignedIn = "ALREADY_SIGNED_IN"
	ErrCodeNotSignedIn     = "NOT_SIGNED_IN"
)
