// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"

	"github.com/canonical/trivia-service/internal/logging"
)

var _ MiddlewareInterface = (*NoopMiddleware)(nil)

// NoopMiddleware passes every request through, for deployments with
// authentication disabled.
type NoopMiddleware struct {
	logger logging.LoggerInterface
}

func (m *NoopMiddleware) RequirePermission(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return next
	}
}

func NewNoopMiddleware(logger logging.LoggerInterface) *NoopMiddleware {
	return &NoopMiddleware{logger: logger}
}
