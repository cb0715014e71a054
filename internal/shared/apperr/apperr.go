// Package apperr defines the error taxonomy shared by all features and its
// mapping to HTTP status codes.
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an application error.
type Kind int

const (
	// KindValidation marks missing, malformed or out-of-bounds input.
	KindValidation Kind = iota
	// KindConflict marks a write rejected by a duplicate guard.
	KindConflict
	// KindNotFound marks a failed lookup by any key.
	KindNotFound
	// KindPersistence marks an unexpected storage failure. The underlying
	// error is kept so handlers can surface it for diagnostics.
	KindPersistence
)

// Error is a classified application error with a human-readable message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error { return e.Err }

// Validation builds a validation error with the given message.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// Conflict builds a conflict error with the given message.
func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// NotFound builds a not-found error with the given message.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Persistence wraps an unexpected storage error with a request-level message.
func Persistence(msg string, err error) *Error {
	return &Error{Kind: KindPersistence, Message: msg, Err: err}
}

// KindOf extracts the kind of err. ok is false for unclassified errors.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindNotFound
}

// Status maps err to the HTTP status code of its kind. Unclassified errors
// map to 500.
func Status(err error) int {
	k, ok := KindOf(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch k {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
