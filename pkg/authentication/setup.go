// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"fmt"

	"github.com/canonical/trivia-service/internal/logging"
	"github.com/canonical/trivia-service/internal/monitoring"
	"github.com/canonical/trivia-service/internal/tracing"
)

// SetupAuthentication wires the key resolver, token verifier and permission
// middleware based on configuration. Returns a noop middleware if disabled.
func SetupAuthentication(
	enabled bool,
	domain string,
	audience string,
	allowedAlgorithms string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (MiddlewareInterface, error) {
	if !enabled {
		logger.Info("JWT authentication is disabled")
		return NewNoopMiddleware(logger), nil
	}

	if domain == "" {
		return nil, fmt.Errorf("AUTHENTICATION_ENABLED is true but AUTH_DOMAIN is not configured")
	}

	config := NewConfig(domain, audience, allowedAlgorithms)
	if len(config.AllowedAlgorithms) == 0 {
		return nil, fmt.Errorf("AUTH_ALLOWED_ALGORITHMS must list at least one signing algorithm")
	}

	resolver := NewKeyResolver(config.JWKSURL, tracer, monitor, logger)
	verifier := NewJWTVerifier(resolver, config, tracer, monitor, logger)

	logger.Infof("JWT authentication is enabled for issuer %s", config.Issuer)

	return NewMiddleware(verifier, tracer, monitor, logger), nil
}
