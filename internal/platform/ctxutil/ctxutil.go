// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/taibuivan/scribe/internal/platform/ctxkey"
	"github.com/taibuivan/scribe/internal/platform/sec"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// # Localization

// WithLocale returns a new context carrying the negotiated locale and its printer.
func WithLocale(ctx context.Context, tag language.Tag, printer *message.Printer) context.Context {
	ctx = context.WithValue(ctx, ctxkey.KeyLocale, tag)
	return context.WithValue(ctx, ctxkey.KeyPrinter, printer)
}

// GetPrinter retrieves the request printer. Returns nil when the locale
// middleware did not run; callers then render in English.
func GetPrinter(ctx context.Context) *message.Printer {
	printer, _ := ctx.Value(ctxkey.KeyPrinter).(*message.Printer)
	return printer
}

// GetLocale retrieves the negotiated locale, defaulting to English.
func GetLocale(ctx context.Context) language.Tag {
	tag, ok := ctx.Value(ctxkey.KeyLocale).(language.Tag)
	if !ok {
		return language.English
	}
	return tag
}

// # Identity & Access

// WithAuthUser returns a new context with the provided auth claims attached.
func WithAuthUser(ctx context.Context, user *sec.AuthClaims) context.Context {
	return context.WithValue(ctx, ctxkey.KeyUser, user)
}

// GetAuthUser retrieves the [*sec.AuthClaims] from the [context.Context].
func GetAuthUser(ctx context.Context) *sec.AuthClaims {
	claims, ok := ctx.Value(ctxkey.KeyUser).(*sec.AuthClaims)
	if !ok {
		return nil
	}
	return claims
}

// ViewerID returns the authenticated user ID, or 0 for anonymous requests.
func ViewerID(ctx context.Context) int64 {
	if claims := GetAuthUser(ctx); claims != nil {
		return claims.UserID
	}
	return 0
}
