package session

import "errors"

var (
	ErrUserNotFound       = errors.New("user record not found")
	ErrNoActiveSession    = errors.New("no active subscription session")
	ErrSessionNotFound    = errors.New("subscription session not found")
	ErrInvalidPurchase    = errors.New("invalid pay-as-you-go purchase")
	ErrInvalidResource    = errors.New("invalid resource kind")
	ErrNegativeQuantity   = errors.New("quantity must not be negative")
	ErrInvalidDraft       = errors.New("invalid session draft")
	ErrPersistenceFailure = errors.New("user record persistence failed")
)
