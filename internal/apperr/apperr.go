// Package apperr defines the error codes returned to API clients and their
// HTTP status mapping. Auth failures deliberately share generic messages so
// responses never reveal which factor failed or whether an account exists.
package apperr

import (
	"errors"
	"net/http"
)

const (
	CodeInvalidCredential  = "invalid_credentials"
	CodeInvalidGoogleToken = "invalid_google_token"
	CodeDuplicateAccount   = "duplicate_account"
	CodeInvalidSession     = "invalid_session"
	CodeUnauthorized       = "unauthorized"
	CodeForbidden          = "forbidden"
	CodeNotFound           = "not_found"
	CodeValidation         = "validation_failed"
	CodeInternal           = "internal_error"
)

var statusByCode = map[string]int{
	CodeInvalidCredential:  http.StatusBadRequest,
	CodeInvalidGoogleToken: http.StatusUnauthorized,
	CodeDuplicateAccount:   http.StatusBadRequest,
	CodeInvalidSession:     http.StatusUnauthorized,
	CodeUnauthorized:       http.StatusUnauthorized,
	CodeForbidden:          http.StatusForbidden,
	CodeNotFound:           http.StatusNotFound,
	CodeValidation:         http.StatusBadRequest,
	CodeInternal:           http.StatusInternalServerError,
}

type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Code extracts the error code, falling back to internal_error for
// anything that is not an *Error.
func Code(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

func Status(err error) int {
	if status, ok := statusByCode[Code(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ClientMessage returns the message safe to send to the caller. Unexpected
// errors collapse to a generic message; details stay in the server log.
func ClientMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Internal server error"
}
