// Package apperror defines the error categories shared by every layer.
//
// HOW IT WORKS:
// Each AppError wraps one of the sentinel errors below, so callers classify
// with errors.Is(err, apperror.ErrValidation) no matter how many times the
// error was wrapped with fmt.Errorf("...: %w", err) on the way up.
//
// The Message is always safe to show to the user. Drivers (HTTP, CLI) print
// it as-is; everything that is not an AppError is reported as an internal
// error without details.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
)

type AppError struct {
	Err     error  // sentinel category
	Message string // Human-readable error message
	Field   string // Optional: input field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %s", resource, id),
	}
}

// ValidationFailed reports rejected user input: duplicate email, wrong
// credentials, short or mismatched password, missing required field.
func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// Unauthorized reports that no logged-in user could be resolved.
func Unauthorized(message string) *AppError {
	return &AppError{
		Err:     ErrUnauthorized,
		Message: message,
	}
}

// UserMessage returns the user-facing message carried by err, or fallback
// when err is not an AppError.
func UserMessage(err error, fallback string) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return fallback
}
