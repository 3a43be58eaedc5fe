// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error handling framework for Scribe.

It provides a rich error type that bridges the gap between low-level Domain/Storage
errors and high-level HTTP responses.

Architecture:

  - AppError: A struct containing a machine-readable Code and a localizable message Key.
  - Localization: The Key and Args are rendered per request by the respond package.
  - Mapping: Explicit mapping from AppError to standard HTTP Status Codes.

Every error that leaves the service layer should be wrapped as an [AppError] to ensure
consistent API responses.
*/
package apperr

import (
	"errors"
	"net/http"

	"github.com/taibuivan/scribe/internal/platform/i18n"
)

// # Error Codes

const (
	CodeNotFound     = "NOT_FOUND"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeBadRequest   = "BAD_REQUEST"
	CodeConflict     = "CONFLICT"
	CodeValidation   = "VALIDATION_ERROR"
	CodeRateLimited  = "RATE_LIMITED"
	CodeInternal     = "INTERNAL_ERROR"
	CodeUnavailable  = "SERVICE_UNAVAILABLE"
)

// AppError is the canonical error type for the Scribe API.
//
// It carries an HTTP status code, a machine-readable code, a message key with
// interpolation arguments, and an optional slice of field-level validation errors.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to clients
// to avoid leaking internal implementation details (e.g., SQL queries).
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "NOT_FOUND", "CONFLICT").
	Code string `json:"code"`
	// Key is the i18n message key rendered for the client.
	Key string `json:"-"`
	// Args are the interpolation arguments for Key.
	Args []any `json:"-"`
	// Message is the English rendering of Key, used for logs and Error().
	Message string `json:"message"`
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, used for server-side logging only.
	Cause error `json:"-"`
	// Details holds per-field validation errors for VALIDATION_ERROR responses.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the JSON field name that failed validation.
	Field string `json:"field"`
	// Message is the rendered description of the failure.
	Message string `json:"message"`
	// Key and Args allow the transport layer to re-render Message per locale.
	Key  string `json:"-"`
	Args []any  `json:"-"`
}

// Error implements the error interface. It returns the English message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// Is reports whether target is an [*AppError] with the same Code and Key.
//
// This makes sentinel comparisons such as errors.Is(err, dberr.ErrNotFound) work
// even though every constructor returns a fresh value.
func (e *AppError) Is(target error) bool {
	var other *AppError
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code && e.Key == other.Key
}

// WithCause attaches an underlying error for logging and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

func newError(code string, status int, key string, args []any) *AppError {
	return &AppError{
		Code:       code,
		Key:        key,
		Args:       args,
		Message:    i18n.Default(key, args...),
		HTTPStatus: status,
	}
}

// # Client Errors (4xx)

// NotFound creates a 404 [AppError].
//
// Example:
//
//	apperr.NotFound(i18n.ErrArticleNotFoundBySlug, slug)
func NotFound(key string, args ...any) *AppError {
	return newError(CodeNotFound, http.StatusNotFound, key, args)
}

// Unauthorized creates a 401 [AppError].
func Unauthorized(key string, args ...any) *AppError {
	return newError(CodeUnauthorized, http.StatusUnauthorized, key, args)
}

// Forbidden creates a 403 [AppError].
func Forbidden(key string, args ...any) *AppError {
	return newError(CodeForbidden, http.StatusForbidden, key, args)
}

// BadRequest creates a 400 [AppError] for semantically invalid state transitions
// (self-follow, duplicate follow, duplicate identity on registration).
func BadRequest(key string, args ...any) *AppError {
	return newError(CodeBadRequest, http.StatusBadRequest, key, args)
}

// Conflict creates a 409 [AppError] for unique-constraint violations detected by storage.
func Conflict(key string, args ...any) *AppError {
	return newError(CodeConflict, http.StatusConflict, key, args)
}

// ValidationError creates a 400 [AppError] with optional per-field details.
func ValidationError(key string, details ...FieldError) *AppError {
	err := newError(CodeValidation, http.StatusBadRequest, key, nil)
	err.Details = details
	return err
}

// RateLimited creates a 429 [AppError].
func RateLimited(retryAfterSeconds int) *AppError {
	return newError(CodeRateLimited, http.StatusTooManyRequests, i18n.ErrRateLimited, []any{retryAfterSeconds})
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	err := newError(CodeInternal, http.StatusInternalServerError, i18n.ErrInternal, nil)
	err.Cause = cause
	return err
}

// ServiceUnavailable creates a 503 [AppError].
func ServiceUnavailable(key string, args ...any) *AppError {
	return newError(CodeUnavailable, http.StatusServiceUnavailable, key, args)
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// HasCode reports whether err carries an [*AppError] with the given code.
func HasCode(err error, code string) bool {
	ae := As(err)
	return ae != nil && ae.Code == code
}

// IsNotFound reports whether err is a NOT_FOUND [AppError].
func IsNotFound(err error) bool {
	return HasCode(err, CodeNotFound)
}
