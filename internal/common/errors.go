// Package common defines shared constants and sentinel errors used across
// the airline admin server layers. Callers should use errors.Is to match
// these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound   = errors.New("not found")
	ErrDuplicateKey = errors.New("duplicate key")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Credential errors.
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Validation errors.
	ErrValidation     = errors.New("validation error")
	ErrInvalidStatus  = errors.New("invalid flight status")
	ErrInvalidNumeric = errors.New("invalid numeric value")

	// Referential integrity between shipments and flights.
	ErrReferentialViolation   = errors.New("referential violation")
	ErrInvalidFlightReference = fmt.Errorf("%w: flight does not exist", ErrReferentialViolation)
	ErrFlightInUse            = fmt.Errorf("%w: flight has shipments", ErrReferentialViolation)

	// Session errors.
	ErrInvalidToken   = errors.New("invalid token")
	ErrSessionExpired = errors.New("session expired")
)
