// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"slices"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded payload of a fully verified token. A Claims value
// is only ever constructed by JWTVerifier after signature, expiry, audience
// and issuer checks all pass.
type Claims struct {
	jwt.RegisteredClaims
	Permissions []string `json:"permissions"`
}

// HasPermission reports whether the claimed permission set contains the
// required permission. A token with no permissions claim at all grants
// nothing.
func (c *Claims) HasPermission(required string) bool {
	return slices.Contains(c.Permissions, required)
}

// CheckPermission is the permission gate: it passes iff the claims carry
// the required permission.
func CheckPermission(required string, claims *Claims) error {
	if claims == nil || !claims.HasPermission(required) {
		return NewForbiddenError()
	}
	return nil
}
