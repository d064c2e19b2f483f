// Package common defines shared sentinel errors used across the DayKeeper
// storage and application layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Storage bootstrap errors. Every store operation is unusable until
	// initialization succeeds.
	ErrInitialization = errors.New("storage initialization failed")

	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// User-facing auth errors. ErrInvalidCredentials is deliberately the same
	// for an unknown email and a wrong password.
	ErrEmailTaken         = errors.New("email is already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
