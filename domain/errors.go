package domain

import "errors"

var (
	UnexpectedDatabaseError = errors.New("database-error")
	ErrDuplicateUsername    = errors.New("duplicate-username")
	ErrUserNotFound         = errors.New("user-not-found")
	ErrRoomNotFound         = errors.New("room-not-found")
	ErrDuplicateSlug        = errors.New("duplicate-slug")
)

var UnexpectedHashingError = errors.New("hashing-error")

var UnexpectedTokenGenerationError = errors.New("token-generation-error")

var (
	ErrInvalidSigningMethod = errors.New("invalid-signing-method")
	ErrExpiredToken         = errors.New("expired-token")
	ErrInvalidToken         = errors.New("invalid-token")
	ErrMissingIdentityClaim = errors.New("missing-identity-claim")
)
