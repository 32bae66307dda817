package core

import "errors"

var (
	ErrInvalidAccountID = errors.New("invalid account id")
	// ErrChallengeNotFound covers both "never issued" and "expired";
	// callers must not be able to tell the two apart.
	ErrChallengeNotFound = errors.New("challenge not found or expired")
	ErrInvalidSignature  = errors.New("invalid signature")
	ErrTokenExpired      = errors.New("token has expired")
	ErrTokenMalformed    = errors.New("malformed token")
	ErrLedgerUnavailable = errors.New("ledger request failed")
)
