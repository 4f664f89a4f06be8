// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"errors"
	"net/http"
	"strings"

	"github.com/canonical/trivia-service/internal/logging"
	"github.com/canonical/trivia-service/internal/monitoring"
	"github.com/canonical/trivia-service/internal/tracing"
)

var _ MiddlewareInterface = (*Middleware)(nil)

type Middleware struct {
	verifier TokenVerifierInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// RequirePermission wraps a handler in the full authorization pipeline:
// bearer extraction, token verification, permission check. The pipeline
// short-circuits at the first failure, before any handler side effects.
func (m *Middleware) RequirePermission(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.RequirePermission")
			defer span.End()

			token, err := m.getBearerToken(r.Header)
			if err != nil {
				m.writeAuthError(w, err)
				return
			}

			claims, err := m.verifier.VerifyToken(ctx, token)
			if err != nil {
				m.logger.Debugf("token verification failed: %v", err)
				m.writeAuthError(w, err)
				return
			}

			if err := CheckPermission(permission, claims); err != nil {
				m.logger.Debugf("permission %q denied for subject %q", permission, claims.Subject)
				m.writeAuthError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithClaims(ctx, claims)))
		})
	}
}

// getBearerToken extracts the credential from the Authorization header.
// Only the "Bearer <token>" format is supported (RFC 6750); the scheme is
// matched case-insensitively.
func (m *Middleware) getBearerToken(headers http.Header) (string, error) {
	header := headers.Get("Authorization")
	if header == "" {
		return "", NewMissingAuthorizationError()
	}

	parts := strings.Fields(header)
	if len(parts) == 0 {
		return "", NewMissingAuthorizationError()
	}

	if !strings.EqualFold(parts[0], "Bearer") {
		return "", NewInvalidBearerFormatError(`Header expected to have Bearer before token`)
	}

	if len(parts) != 2 {
		return "", NewInvalidBearerFormatError("Authorization header must be a Bearer token.")
	}

	return parts[1], nil
}

func (m *Middleware) writeAuthError(w http.ResponseWriter, err error) {
	authErr := new(AuthError)
	if !errors.As(err, &authErr) {
		authErr = NewUnparseableError()
	}

	authErr.WriteResponse(w)
}

func NewMiddleware(verifier TokenVerifierInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	m := new(Middleware)

	m.verifier = verifier

	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}
