// Package common defines shared constants and sentinel errors used across
// the QuickWork client layers. Callers should use errors.Is to match the
// sentinel values and errors.As for the typed ones.
package common

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is returned when the login endpoint rejects
	// the supplied username/password pair.
	ErrInvalidCredentials = errors.New("Credenciales incorrectas")

	// ErrUnauthorized is returned when a protected request is made without
	// a valid session token.
	ErrUnauthorized = errors.New("no autorizado")

	// ErrNotFound is returned when a requested entity does not exist
	// (locally or in a fetched batch).
	ErrNotFound = errors.New("no encontrado")

	// ErrUnavailable signals a transport-level failure: the backend could
	// not be reached at all. The underlying cause is wrapped.
	ErrUnavailable = errors.New("servidor no disponible")

	// ErrStorage signals a local persistence read/write failure. Session
	// reads treat it as "not authenticated" rather than fatal.
	ErrStorage = errors.New("error de almacenamiento local")
)

// NetworkError wraps a transport failure so callers can both match
// common.ErrUnavailable and inspect the cause.
func NetworkError(cause error) error {
	return fmt.Errorf("%w: %w", ErrUnavailable, cause)
}

// RegistrationError carries the backend's rejection text for a signup
// attempt. An empty body falls back to a generic message.
type RegistrationError struct {
	Body string
}

func (e *RegistrationError) Error() string {
	if e.Body == "" {
		return "Error en el registro"
	}
	return e.Body
}

// ValidationError reports a client-side form check failure. It is raised
// before any network call is made.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }
