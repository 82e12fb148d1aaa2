package apperr

import (
	"errors"
	"net/http"
)

// Error codes shared by every layer and rendered verbatim in the error
// envelope.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeNotFound           = "NOT_FOUND"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeInternal           = "INTERNAL_ERROR"
)

// Error is an operational API error carrying an HTTP status and a stable
// machine-readable code. Storage providers and services return it as a
// value; the centralized middleware in serverutils renders it.
type Error struct {
	StatusCode int
	Code       string
	Message    string
	Err        error // wrapped cause, logged but never rendered
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewValidation(message string) *Error {
	return &Error{StatusCode: http.StatusBadRequest, Code: CodeValidation, Message: message}
}

func NewNotFound(message string) *Error {
	return &Error{StatusCode: http.StatusNotFound, Code: CodeNotFound, Message: message}
}

func NewServiceUnavailable(message string) *Error {
	return &Error{StatusCode: http.StatusServiceUnavailable, Code: CodeServiceUnavailable, Message: message}
}

func NewInternal(err error) *Error {
	return &Error{StatusCode: http.StatusInternalServerError, Code: CodeInternal, Message: "Internal Server Error", Err: err}
}

// From classifies an arbitrary error, passing typed errors through and
// wrapping everything else as internal.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternal(err)
}
