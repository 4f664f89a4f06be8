// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"
	"net/http"
)

// ErrorKind is a machine readable authorization failure class.
type ErrorKind string

const (
	ErrorKindMissingAuthorization ErrorKind = "missing_authorization"
	ErrorKindInvalidBearerFormat  ErrorKind = "invalid_bearer_format"
	ErrorKindMalformed            ErrorKind = "malformed"
	ErrorKindKeyNotFound          ErrorKind = "key_not_found"
	ErrorKindExpired              ErrorKind = "expired"
	ErrorKindInvalidClaims        ErrorKind = "invalid_claims"
	ErrorKindUnparseable          ErrorKind = "unparseable"
	ErrorKindForbidden            ErrorKind = "forbidden"
)

// AuthError is a terminal authorization failure. It carries its own status
// code and message and short-circuits the protected operation.
type AuthError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
}

func (e *AuthError) Error() string {
	return e.Message
}

// Is implements error matching on the failure kind.
func (e *AuthError) Is(target error) bool {
	t, ok := target.(*AuthError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// WriteResponse renders the failure as the contractual error body.
func (e *AuthError) WriteResponse(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": e.Message,
		"error":   e.StatusCode,
	})
}

func NewMissingAuthorizationError() *AuthError {
	return &AuthError{
		Kind:       ErrorKindMissingAuthorization,
		StatusCode: http.StatusUnauthorized,
		Message:    "Authorization header in request headers is mandatory.",
	}
}

func NewInvalidBearerFormatError(message string) *AuthError {
	return &AuthError{
		Kind:       ErrorKindInvalidBearerFormat,
		StatusCode: http.StatusUnauthorized,
		Message:    message,
	}
}

func NewMalformedError() *AuthError {
	return &AuthError{
		Kind:       ErrorKindMalformed,
		StatusCode: http.StatusUnauthorized,
		Message:    "Authorization malformed.",
	}
}

func NewKeyNotFoundError() *AuthError {
	return &AuthError{
		Kind:       ErrorKindKeyNotFound,
		StatusCode: http.StatusBadRequest,
		Message:    "Unable to find the appropriate key.",
	}
}

func NewExpiredError() *AuthError {
	return &AuthError{
		Kind:       ErrorKindExpired,
		StatusCode: http.StatusUnauthorized,
		Message:    "Token expired.",
	}
}

func NewInvalidClaimsError() *AuthError {
	return &AuthError{
		Kind:       ErrorKindInvalidClaims,
		StatusCode: http.StatusUnauthorized,
		Message:    "Incorrect claims. Please, check the audience and issuer.",
	}
}

func NewUnparseableError() *AuthError {
	return &AuthError{
		Kind:       ErrorKindUnparseable,
		StatusCode: http.StatusBadRequest,
		Message:    "Unable to parse authentication token.",
	}
}

func NewForbiddenError() *AuthError {
	return &AuthError{
		Kind:       ErrorKindForbidden,
		StatusCode: http.StatusForbidden,
		Message:    "Forbidden Request",
	}
}
