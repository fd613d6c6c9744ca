package service

import "errors"

var (
	ErrUserNotExists          = errors.New("user does not exist")
	ErrUserNotAuthenticated   = errors.New("user not authenticated")
	ErrQuotaExceeded          = errors.New("think quota exceeded")
	ErrInvalidSenseReference  = errors.New("sense id does not belong to word")
	ErrNotFoundOrAccessDenied = errors.New("think not found or access denied")
	ErrDictionaryUnavailable  = errors.New("dictionary unavailable")
)

const (
	// UnresolvedSenseID is stored when the dictionary offers no sense id for a word.
	UnresolvedSenseID = "-1"
	// UnknownUsername stands in for an owner that no longer exists.
	UnknownUsername = "unknown"
)
