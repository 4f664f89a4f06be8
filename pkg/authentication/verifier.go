// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/canonical/trivia-service/internal/logging"
	"github.com/canonical/trivia-service/internal/monitoring"
	"github.com/canonical/trivia-service/internal/tracing"
)

var _ TokenVerifierInterface = (*JWTVerifier)(nil)

type JWTVerifier struct {
	resolver KeyResolverInterface
	config   *Config

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// VerifyToken decodes and verifies a bearer token in a single attempt.
// Signature verification only accepts the algorithms allow-listed in the
// config; a token declaring any other algorithm fails before key resolution.
func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (*Claims, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	claims := new(Claims)

	token, err := jwt.ParseWithClaims(
		rawToken,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			kid, ok := token.Header["kid"].(string)
			if !ok || kid == "" {
				return nil, NewMalformedError()
			}
			return v.resolver.Resolve(ctx, kid)
		},
		jwt.WithValidMethods(v.config.AllowedAlgorithms),
		jwt.WithAudience(v.config.Audience),
		jwt.WithIssuer(v.config.Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, mapVerificationError(err)
	}

	if !token.Valid {
		return nil, NewUnparseableError()
	}

	return claims, nil
}

// mapVerificationError collapses jwt library failures onto the authorization
// failure taxonomy.
func mapVerificationError(err error) error {
	authErr := new(AuthError)
	if errors.As(err, &authErr) {
		return authErr
	}

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return NewExpiredError()
	case errors.Is(err, jwt.ErrTokenInvalidAudience), errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return NewInvalidClaimsError()
	default:
		return NewUnparseableError()
	}
}

func NewJWTVerifier(resolver KeyResolverInterface, config *Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *JWTVerifier {
	v := new(JWTVerifier)

	v.resolver = resolver
	v.config = config

	v.tracer = tracer
	v.monitor = monitor
	v.logger = logger

	return v
}
