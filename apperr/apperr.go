// Package apperr carries the error taxonomy shared by the booking core and
// the HTTP layer. Every recoverable failure is one of a small set of codes
// that map 1:1 onto HTTP status codes; anything else is treated as internal.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeValidation = "VALIDATION"
	CodeAuth       = "UNAUTHORIZED"
	CodeForbidden  = "FORBIDDEN"
	CodeNotFound   = "NOT_FOUND"
	CodeConflict   = "CONFLICT"
	CodeInternal   = "INTERNAL"
)

type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidation(msg string) error { return &Error{Code: CodeValidation, Message: msg} }
func NewAuth(msg string) error       { return &Error{Code: CodeAuth, Message: msg} }
func NewForbidden(msg string) error  { return &Error{Code: CodeForbidden, Message: msg} }
func NewNotFound(msg string) error   { return &Error{Code: CodeNotFound, Message: msg} }
func NewConflict(msg string) error   { return &Error{Code: CodeConflict, Message: msg} }

// CodeOf extracts the taxonomy code, defaulting to internal for plain errors.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// IsCode reports whether err carries the given taxonomy code.
func IsCode(err error, code string) bool { return CodeOf(err) == code }

// HTTPStatus maps a taxonomy code onto the status the surrounding service
// layer must answer with.
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeAuth:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the caller-visible message, hiding internals behind a
// generic one.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal server error"
}
