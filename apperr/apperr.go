// Package apperr defines the single error shape used by all handlers:
// a human-readable message plus the HTTP status code carrying the error kind.
package apperr

import (
	"errors"
	"net/http"
)

type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

func New(message string, statusCode int) *Error {
	return &Error{StatusCode: statusCode, Message: message}
}

func Validation(message string) *Error {
	return New(message, http.StatusBadRequest)
}

func Unauthorized(message string) *Error {
	return New(message, http.StatusUnauthorized)
}

func Forbidden(message string) *Error {
	return New(message, http.StatusForbidden)
}

func NotFound(message string) *Error {
	return New(message, http.StatusNotFound)
}

func Conflict(message string) *Error {
	return New(message, http.StatusConflict)
}

// StatusCode extracts the HTTP status for err, defaulting to 500 for
// anything that is not an *Error.
func StatusCode(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
