// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/trivia-service/internal/logging"
	"github.com/canonical/trivia-service/internal/monitoring"
	"github.com/canonical/trivia-service/internal/tracing"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_interfaces.go -source=./interfaces.go

func TestMiddleware_RequirePermission(t *testing.T) {
	adminClaims := &Claims{Permissions: []string{"add-question", "delete-question"}}
	readonlyClaims := &Claims{Permissions: []string{"play-quiz"}}
	noPermsClaims := &Claims{}

	tests := []struct {
		name               string
		authHeader         string
		permission         string
		setupVerifier      func(*MockTokenVerifierInterface)
		expectedStatusCode int
		expectedMessage    string
		expectHandlerCall  bool
	}{
		{
			name:               "Missing Authorization header - rejects request",
			authHeader:         "",
			permission:         "add-question",
			setupVerifier:      func(m *MockTokenVerifierInterface) {},
			expectedStatusCode: http.StatusUnauthorized,
			expectedMessage:    "Authorization header in request headers is mandatory.",
		},
		{
			name:               "Scheme is not Bearer - rejects request",
			authHeader:         "Basic dXNlcjpwYXNz",
			permission:         "add-question",
			setupVerifier:      func(m *MockTokenVerifierInterface) {},
			expectedStatusCode: http.StatusUnauthorized,
			expectedMessage:    "Header expected to have Bearer before token",
		},
		{
			name:               "Bearer scheme with no credential - rejects request",
			authHeader:         "Bearer",
			permission:         "add-question",
			setupVerifier:      func(m *MockTokenVerifierInterface) {},
			expectedStatusCode: http.StatusUnauthorized,
			expectedMessage:    "Authorization header must be a Bearer token.",
		},
		{
			name:               "Bearer scheme with trailing garbage - rejects request",
			authHeader:         "Bearer token extra",
			permission:         "add-question",
			setupVerifier:      func(m *MockTokenVerifierInterface) {},
			expectedStatusCode: http.StatusUnauthorized,
			expectedMessage:    "Authorization header must be a Bearer token.",
		},
		{
			name:       "Expired token - rejects request",
			authHeader: "Bearer expired-token",
			permission: "add-question",
			setupVerifier: func(m *MockTokenVerifierInterface) {
				m.EXPECT().VerifyToken(gomock.Any(), "expired-token").Return(nil, NewExpiredError())
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedMessage:    "Token expired.",
		},
		{
			name:       "Valid token without required permission - rejects request",
			authHeader: "Bearer readonly-token",
			permission: "add-question",
			setupVerifier: func(m *MockTokenVerifierInterface) {
				m.EXPECT().VerifyToken(gomock.Any(), "readonly-token").Return(readonlyClaims, nil)
			},
			expectedStatusCode: http.StatusForbidden,
			expectedMessage:    "Forbidden Request",
		},
		{
			name:       "Valid token without any permissions claim - rejects request",
			authHeader: "Bearer bare-token",
			permission: "add-question",
			setupVerifier: func(m *MockTokenVerifierInterface) {
				m.EXPECT().VerifyToken(gomock.Any(), "bare-token").Return(noPermsClaims, nil)
			},
			expectedStatusCode: http.StatusForbidden,
			expectedMessage:    "Forbidden Request",
		},
		{
			name:       "Valid token with required permission - invokes handler",
			authHeader: "Bearer admin-token",
			permission: "add-question",
			setupVerifier: func(m *MockTokenVerifierInterface) {
				m.EXPECT().VerifyToken(gomock.Any(), "admin-token").Return(adminClaims, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectHandlerCall:  true,
		},
		{
			name:       "Lowercase bearer scheme is accepted",
			authHeader: "bearer admin-token",
			permission: "add-question",
			setupVerifier: func(m *MockTokenVerifierInterface) {
				m.EXPECT().VerifyToken(gomock.Any(), "admin-token").Return(adminClaims, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectHandlerCall:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockVerifier := NewMockTokenVerifierInterface(ctrl)
			tt.setupVerifier(mockVerifier)

			m := NewMiddleware(mockVerifier, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

			handlerCalls := 0
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalls++
				if claims := ClaimsFromContext(r.Context()); claims == nil {
					t.Error("expected claims in handler context")
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/questions", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			m.RequirePermission(tt.permission)(handler).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatusCode {
				t.Errorf("expected status %d, got %d", tt.expectedStatusCode, rr.Code)
			}

			if tt.expectHandlerCall && handlerCalls != 1 {
				t.Errorf("expected handler to be called exactly once, got %d", handlerCalls)
			}
			if !tt.expectHandlerCall && handlerCalls != 0 {
				t.Errorf("expected handler not to be called, got %d calls", handlerCalls)
			}

			if tt.expectedMessage != "" {
				var body struct {
					Success bool   `json:"success"`
					Message string `json:"message"`
					Error   int    `json:"error"`
				}
				if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
					t.Fatalf("failed to decode error body: %v", err)
				}
				if body.Success {
					t.Error("expected success to be false")
				}
				if body.Message != tt.expectedMessage {
					t.Errorf("expected message %q, got %q", tt.expectedMessage, body.Message)
				}
				if body.Error != tt.expectedStatusCode {
					t.Errorf("expected error %d, got %d", tt.expectedStatusCode, body.Error)
				}
			}
		})
	}
}

func TestMiddleware_GetBearerToken(t *testing.T) {
	tests := []struct {
		name          string
		authHeader    string
		expectedToken string
		expectedErr   error
	}{
		{
			name:        "No Authorization header",
			authHeader:  "",
			expectedErr: NewMissingAuthorizationError(),
		},
		{
			name:          "Bearer token",
			authHeader:    "Bearer my-token-123",
			expectedToken: "my-token-123",
		},
		{
			name:          "Case-insensitive scheme",
			authHeader:    "BEARER my-token-123",
			expectedToken: "my-token-123",
		},
		{
			name:        "Raw token without Bearer prefix",
			authHeader:  "my-token-123",
			expectedErr: NewInvalidBearerFormatError(""),
		},
		{
			name:        "Missing credential",
			authHeader:  "Bearer",
			expectedErr: NewInvalidBearerFormatError(""),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := NewMiddleware(NewMockTokenVerifierInterface(ctrl), tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

			headers := http.Header{}
			if test.authHeader != "" {
				headers.Set("Authorization", test.authHeader)
			}

			token, err := m.getBearerToken(headers)

			if token != test.expectedToken {
				t.Errorf("expected token %q, got %q", test.expectedToken, token)
			}

			if test.expectedErr == nil && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
			if test.expectedErr != nil {
				authErr, ok := err.(*AuthError)
				if !ok {
					t.Fatalf("expected AuthError, got %T", err)
				}
				if authErr.Kind != test.expectedErr.(*AuthError).Kind {
					t.Errorf("expected kind %q, got %q", test.expectedErr.(*AuthError).Kind, authErr.Kind)
				}
			}
		})
	}
}
