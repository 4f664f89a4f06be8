// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/trivia-service/internal/logging"
	"github.com/canonical/trivia-service/internal/monitoring"
	"github.com/canonical/trivia-service/internal/tracing"
)

const (
	testDomain   = "trivia.example.com"
	testAudience = "capstone-trivia"
	testKid      = "test-key-1"
)

func testKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate RSA key: %v", err)
	}
	return key
}

func signToken(t *testing.T, key *rsa.PrivateKey, kid string, claims Claims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	if kid != "" {
		token.Header["kid"] = kid
	}

	signed, err := token.SignedString(key)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func validClaims() Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "https://" + testDomain + "/",
			Audience:  jwt.ClaimStrings{testAudience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   "auth0|test-user",
		},
		Permissions: []string{"add-question", "play-quiz"},
	}
}

func newTestVerifier(t *testing.T, resolver KeyResolverInterface) *JWTVerifier {
	t.Helper()
	config := NewConfig(testDomain, testAudience, "RS256")
	return NewJWTVerifier(resolver, config, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestJWTVerifier_VerifyToken_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	key := testKey(t)
	mockResolver := NewMockKeyResolverInterface(ctrl)
	mockResolver.EXPECT().Resolve(gomock.Any(), testKid).Return(&key.PublicKey, nil)

	v := newTestVerifier(t, mockResolver)

	claims, err := v.VerifyToken(context.Background(), signToken(t, key, testKid, validClaims()))
	if err != nil {
		t.Fatalf("expected verification to succeed, got %v", err)
	}

	if claims.Subject != "auth0|test-user" {
		t.Errorf("expected subject %q, got %q", "auth0|test-user", claims.Subject)
	}
	if !claims.HasPermission("add-question") {
		t.Error("expected claims to carry the add-question permission")
	}
	if claims.HasPermission("delete-question") {
		t.Error("did not expect claims to carry the delete-question permission")
	}
}

func TestJWTVerifier_VerifyToken_Failures(t *testing.T) {
	key := testKey(t)
	otherKey := testKey(t)

	tests := []struct {
		name          string
		token         func(t *testing.T) string
		setupResolver func(*MockKeyResolverInterface)
		expectedErr   *AuthError
	}{
		{
			name: "Missing kid header",
			token: func(t *testing.T) string {
				return signToken(t, key, "", validClaims())
			},
			setupResolver: func(m *MockKeyResolverInterface) {},
			expectedErr:   NewMalformedError(),
		},
		{
			name: "Key not found",
			token: func(t *testing.T) string {
				return signToken(t, key, "unknown-kid", validClaims())
			},
			setupResolver: func(m *MockKeyResolverInterface) {
				m.EXPECT().Resolve(gomock.Any(), "unknown-kid").Return(nil, NewKeyNotFoundError())
			},
			expectedErr: NewKeyNotFoundError(),
		},
		{
			name: "Expired token",
			token: func(t *testing.T) string {
				claims := validClaims()
				claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
				return signToken(t, key, testKid, claims)
			},
			setupResolver: func(m *MockKeyResolverInterface) {
				m.EXPECT().Resolve(gomock.Any(), testKid).Return(&key.PublicKey, nil)
			},
			expectedErr: NewExpiredError(),
		},
		{
			name: "Audience mismatch",
			token: func(t *testing.T) string {
				claims := validClaims()
				claims.Audience = jwt.ClaimStrings{"another-api"}
				return signToken(t, key, testKid, claims)
			},
			setupResolver: func(m *MockKeyResolverInterface) {
				m.EXPECT().Resolve(gomock.Any(), testKid).Return(&key.PublicKey, nil)
			},
			expectedErr: NewInvalidClaimsError(),
		},
		{
			name: "Issuer mismatch",
			token: func(t *testing.T) string {
				claims := validClaims()
				claims.Issuer = "https://evil.example.com/"
				return signToken(t, key, testKid, claims)
			},
			setupResolver: func(m *MockKeyResolverInterface) {
				m.EXPECT().Resolve(gomock.Any(), testKid).Return(&key.PublicKey, nil)
			},
			expectedErr: NewInvalidClaimsError(),
		},
		{
			name: "Missing expiry claim",
			token: func(t *testing.T) string {
				claims := validClaims()
				claims.ExpiresAt = nil
				return signToken(t, key, testKid, claims)
			},
			setupResolver: func(m *MockKeyResolverInterface) {
				m.EXPECT().Resolve(gomock.Any(), testKid).Return(&key.PublicKey, nil)
			},
			expectedErr: NewUnparseableError(),
		},
		{
			name: "Signature from a different key",
			token: func(t *testing.T) string {
				return signToken(t, otherKey, testKid, validClaims())
			},
			setupResolver: func(m *MockKeyResolverInterface) {
				m.EXPECT().Resolve(gomock.Any(), testKid).Return(&key.PublicKey, nil)
			},
			expectedErr: NewUnparseableError(),
		},
		{
			name: "Disallowed signing algorithm",
			token: func(t *testing.T) string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims())
				token.Header["kid"] = testKid
				signed, err := token.SignedString([]byte("shared-secret"))
				if err != nil {
					t.Fatalf("failed to sign token: %v", err)
				}
				return signed
			},
			// the allow-list check fires before key resolution
			setupResolver: func(m *MockKeyResolverInterface) {},
			expectedErr:   NewUnparseableError(),
		},
		{
			name: "Garbage token",
			token: func(t *testing.T) string {
				return "not-a-jwt"
			},
			setupResolver: func(m *MockKeyResolverInterface) {},
			expectedErr:   NewUnparseableError(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockResolver := NewMockKeyResolverInterface(ctrl)
			tt.setupResolver(mockResolver)

			v := newTestVerifier(t, mockResolver)

			claims, err := v.VerifyToken(context.Background(), tt.token(t))
			if claims != nil {
				t.Error("expected no claims on verification failure")
			}
			if !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected error %v, got %v", tt.expectedErr, err)
			}

			authErr := new(AuthError)
			if !errors.As(err, &authErr) {
				t.Fatalf("expected AuthError, got %T", err)
			}
			if authErr.StatusCode != tt.expectedErr.StatusCode {
				t.Errorf("expected status %d, got %d", tt.expectedErr.StatusCode, authErr.StatusCode)
			}
		})
	}
}

func TestCheckPermission(t *testing.T) {
	tests := []struct {
		name       string
		required   string
		claims     *Claims
		expectPass bool
	}{
		{
			name:       "Permission present",
			required:   "edit-question",
			claims:     &Claims{Permissions: []string{"edit-question", "play-quiz"}},
			expectPass: true,
		},
		{
			name:     "Permission absent",
			required: "delete-question",
			claims:   &Claims{Permissions: []string{"play-quiz"}},
		},
		{
			name:     "No permissions claim grants nothing",
			required: "play-quiz",
			claims:   &Claims{},
		},
		{
			name:     "Nil claims",
			required: "play-quiz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPermission(tt.required, tt.claims)

			if tt.expectPass && err != nil {
				t.Errorf("expected permission check to pass, got %v", err)
			}
			if !tt.expectPass {
				if !errors.Is(err, NewForbiddenError()) {
					t.Errorf("expected forbidden error, got %v", err)
				}
			}
		})
	}
}
