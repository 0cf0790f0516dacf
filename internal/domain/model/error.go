package model

import (
	"errors"
	"net/http"
)

// ErrorKind classifies failures surfaced by the API
type ErrorKind string

const (
	KindValidation        ErrorKind = "ValidationError"
	KindNotFound          ErrorKind = "NotFound"
	KindMissingCredential ErrorKind = "MissingCredential"
	KindInvalidCredential ErrorKind = "InvalidCredential"
	KindRateLimited       ErrorKind = "RateLimited"
	KindStore             ErrorKind = "StoreError"
)

var kindStatus = map[ErrorKind]int{
	KindValidation:        http.StatusBadRequest,
	KindNotFound:          http.StatusNotFound,
	KindMissingCredential: http.StatusUnauthorized,
	KindInvalidCredential: http.StatusUnauthorized,
	KindRateLimited:       http.StatusTooManyRequests,
	KindStore:             http.StatusInternalServerError,
}

// AppError is a failure that already knows how it must be reported.
// Message and Detail are safe to show to clients, Err is the internal cause.
type AppError struct {
	Kind       ErrorKind
	Message    string
	Detail     string
	RetryAfter int
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status of the error kind
func (e *AppError) Status() int {
	if status, ok := kindStatus[e.Kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func NewValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewMissingCredentialError(message string) *AppError {
	return &AppError{Kind: KindMissingCredential, Message: message}
}

func NewInvalidCredentialError(message string) *AppError {
	return &AppError{Kind: KindInvalidCredential, Message: message}
}

func NewRateLimitedError(message string, retryAfter int) *AppError {
	return &AppError{Kind: KindRateLimited, Message: message, RetryAfter: retryAfter}
}

// NewStoreError wraps a persistence failure, err is only exposed outside the hardened mode
func NewStoreError(message string, err error) *AppError {
	return &AppError{Kind: KindStore, Message: message, Err: err}
}

// AsAppError extracts an AppError from the chain of err
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsKind reports whether err carries an AppError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Kind == kind
}
