// Package common defines shared constants and sentinel errors used across
// PeakHub client components. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Expected negative outcomes. These are normal results of login and
	// registration, surfaced to the user as messages, never as crashes.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already in use")

	// ErrInvalidToken marks a persisted session token that failed
	// signature or claims validation.
	ErrInvalidToken = errors.New("invalid token")
)
