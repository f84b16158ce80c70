// Package errors defines the domain error types shared across services.
package errors

import "errors"

// DomainError is a structured error carrying an optional machine-readable
// code alongside a user-facing message. Backend responses with a non-2xx
// status decode into this type.
type DomainError struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

func (e *DomainError) Error() string {
	return e.Message
}

// CodeOf returns the domain error code carried by err, or "" when err does
// not wrap a DomainError.
func CodeOf(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
