// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/canonical/trivia-service/internal/logging"
	"github.com/canonical/trivia-service/internal/monitoring"
	"github.com/canonical/trivia-service/internal/tracing"
)

func jwksDocument(t *testing.T, kid string, key *rsa.PublicKey) []byte {
	t.Helper()

	doc := jsonWebKeySet{
		Keys: []jsonWebKey{
			{
				Kty: "RSA",
				Kid: "unrelated-key",
				Use: "sig",
				Alg: "RS256",
				N:   base64.RawURLEncoding.EncodeToString([]byte{0x01, 0x02, 0x03}),
				E:   "AQAB",
			},
			{
				Kty: "RSA",
				Kid: kid,
				Use: "sig",
				Alg: "RS256",
				N:   base64.RawURLEncoding.EncodeToString(key.N.Bytes()),
				E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.E)).Bytes()),
			},
		},
	}

	body, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("failed to marshal JWKS: %v", err)
	}
	return body
}

func newJWKSResolver(url string) *KeyResolver {
	return NewKeyResolver(url, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestKeyResolver_Resolve(t *testing.T) {
	key := testKey(t)
	body := jwksDocument(t, testKid, &key.PublicKey)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
	}))
	defer srv.Close()

	resolver := newJWKSResolver(srv.URL)

	got, err := resolver.Resolve(context.Background(), testKid)
	if err != nil {
		t.Fatalf("expected resolution to succeed, got %v", err)
	}

	if got.N.Cmp(key.PublicKey.N) != 0 {
		t.Error("resolved modulus does not match the published key")
	}
	if got.E != key.PublicKey.E {
		t.Errorf("expected exponent %d, got %d", key.PublicKey.E, got.E)
	}
}

func TestKeyResolver_Resolve_UnknownKid(t *testing.T) {
	key := testKey(t)
	body := jwksDocument(t, testKid, &key.PublicKey)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(body)
	}))
	defer srv.Close()

	resolver := newJWKSResolver(srv.URL)

	_, err := resolver.Resolve(context.Background(), "no-such-kid")
	if !errors.Is(err, NewKeyNotFoundError()) {
		t.Errorf("expected key not found error, got %v", err)
	}
}

func TestKeyResolver_Resolve_EndpointFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	resolver := newJWKSResolver(srv.URL)

	_, err := resolver.Resolve(context.Background(), testKid)
	if !errors.Is(err, NewKeyNotFoundError()) {
		t.Errorf("expected key not found error, got %v", err)
	}
}

func TestKeyResolver_Resolve_EndpointUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	resolver := newJWKSResolver(srv.URL)

	_, err := resolver.Resolve(context.Background(), testKid)
	if !errors.Is(err, NewKeyNotFoundError()) {
		t.Errorf("expected key not found error, got %v", err)
	}
}

func TestKeyResolver_Resolve_FetchesFreshEveryCall(t *testing.T) {
	key := testKey(t)
	body := jwksDocument(t, testKid, &key.PublicKey)

	var fetches atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches.Add(1)
		w.Write(body)
	}))
	defer srv.Close()

	resolver := newJWKSResolver(srv.URL)

	for i := 0; i < 3; i++ {
		if _, err := resolver.Resolve(context.Background(), testKid); err != nil {
			t.Fatalf("resolution %d failed: %v", i, err)
		}
	}

	if got := fetches.Load(); got != 3 {
		t.Errorf("expected 3 JWKS fetches, got %d", got)
	}
}
