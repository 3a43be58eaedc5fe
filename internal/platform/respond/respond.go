// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses.
// Successful responses are keyed payloads ({"article": ...}, {"articles": ..., "meta": ...}).
// Error responses share one envelope whose message is rendered in the request locale.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/taibuivan/scribe/internal/platform/apperr"
	"github.com/taibuivan/scribe/internal/platform/constants"
	"github.com/taibuivan/scribe/internal/platform/ctxutil"
	"github.com/taibuivan/scribe/internal/platform/i18n"
	"github.com/taibuivan/scribe/pkg/pagination"
)

// ErrorEnvelope is the JSON envelope for error responses.
type ErrorEnvelope struct {
	Message string              `json:"message"`
	Code    string              `json:"code"`
	Details []apperr.FieldError `json:"details,omitempty"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with a single keyed payload, e.g. {"article": ...}.
func OK(writer http.ResponseWriter, key string, data interface{}) {
	JSON(writer, http.StatusOK, map[string]interface{}{key: data})
}

// Created writes a 201 Created response with a single keyed payload.
func Created(writer http.ResponseWriter, key string, data interface{}) {
	JSON(writer, http.StatusCreated, map[string]interface{}{key: data})
}

// Paginated writes a 200 OK response with a keyed list and a metadata block.
func Paginated(writer http.ResponseWriter, key string, data interface{}, metadata pagination.Meta) {
	JSON(writer, http.StatusOK, map[string]interface{}{
		key:                 data,
		constants.FieldMeta: metadata,
	})
}

// NoContent writes a 204 No Content response.
func NoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// Error converts any Go error into a standardized, localized JSON API error response.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	ctx := request.Context()
	logger := ctxutil.GetLogger(ctx)

	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		// Unexpected internal error: log full details but hide them from the client for security.
		logger.ErrorContext(ctx, "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(ctx)),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= 500 {
		logger.ErrorContext(ctx, "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(ctx)),
			slog.Any("cause", appError.Cause),
		)
	}

	printer := ctxutil.GetPrinter(ctx)

	// Field errors are copied so the shared sentinel errors are never mutated.
	var details []apperr.FieldError
	if len(appError.Details) > 0 {
		details = make([]apperr.FieldError, len(appError.Details))
		for index, detail := range appError.Details {
			if detail.Key != "" {
				detail.Message = i18n.Render(printer, detail.Key, detail.Args...)
			}
			details[index] = detail
		}
	}

	message := appError.Message
	if appError.Key != "" {
		message = i18n.Render(printer, appError.Key, appError.Args...)
	}

	JSON(writer, appError.HTTPStatus, ErrorEnvelope{
		Message: message,
		Code:    appError.Code,
		Details: details,
	})
}
