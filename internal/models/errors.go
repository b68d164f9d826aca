package models

import (
	"errors"
	"fmt"
	"net/http"
)

// ============================================================================
// ERROR TAXONOMY
// ============================================================================

type ErrorKind int

const (
	// ValidationError: missing or malformed input, user-fixable.
	ValidationError ErrorKind = iota
	// NotFoundError: a referenced entity is absent.
	NotFoundError
	// AuthorizationError: the principal does not own the resource.
	AuthorizationError
	// ConflictError: uniqueness violation.
	ConflictError
	// ServerError: store or unexpected failure.
	ServerError
)

// AppError carries the API error code alongside the classification so
// handlers can map straight to the response envelope.
type AppError struct {
	Kind    ErrorKind
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case ValidationError, ConflictError:
		return http.StatusBadRequest
	case NotFoundError:
		return http.StatusNotFound
	case AuthorizationError:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func NewValidationError(code, message string) *AppError {
	return &AppError{Kind: ValidationError, Code: code, Message: message}
}

func NewNotFoundError(code, message string) *AppError {
	return &AppError{Kind: NotFoundError, Code: code, Message: message}
}

func NewAuthorizationError(code, message string) *AppError {
	return &AppError{Kind: AuthorizationError, Code: code, Message: message}
}

func NewConflictError(code, message string) *AppError {
	return &AppError{Kind: ConflictError, Code: code, Message: message}
}

func NewServerError(message string, err error) *AppError {
	return &AppError{Kind: ServerError, Code: "SERVER_ERROR", Message: message, Err: err}
}

// AsAppError unwraps err to an AppError, or classifies it as a ServerError.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewServerError(err.Error(), err)
}
