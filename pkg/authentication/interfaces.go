// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"crypto/rsa"
	"net/http"
)

type KeyResolverInterface interface {
	// Resolve fetches the provider key set and returns the public key whose
	// key ID matches kid
	Resolve(ctx context.Context, kid string) (*rsa.PublicKey, error)
}

type TokenVerifierInterface interface {
	// VerifyToken verifies a raw JWT string and returns the decoded claims
	VerifyToken(ctx context.Context, rawToken string) (*Claims, error)
}

type MiddlewareInterface interface {
	// RequirePermission gates a handler on a verified token carrying the
	// given permission
	RequirePermission(permission string) func(http.Handler) http.Handler
}
