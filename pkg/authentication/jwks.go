// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/trivia-service/internal/logging"
	"github.com/canonical/trivia-service/internal/monitoring"
	"github.com/canonical/trivia-service/internal/tracing"
)

// jsonWebKey is a public key record as published by the provider, RFC 7517.
type jsonWebKey struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	Use string `json:"use"`
	Alg string `json:"alg"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type jsonWebKeySet struct {
	Keys []jsonWebKey `json:"keys"`
}

var _ KeyResolverInterface = (*KeyResolver)(nil)

// KeyResolver fetches the provider JWKS fresh on every call. No caching is
// performed, trading one network round-trip per verification for never
// serving a stale or revoked key.
type KeyResolver struct {
	jwksURL string
	client  *http.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (r *KeyResolver) Resolve(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	ctx, span := r.tracer.Start(ctx, "authentication.KeyResolver.Resolve")
	defer span.End()

	keySet, err := r.fetchKeySet(ctx)
	if err != nil {
		r.logger.Debugf("JWKS fetch failed: %v", err)
		return nil, NewKeyNotFoundError()
	}

	for _, key := range keySet.Keys {
		if key.Kid == kid {
			return parseRSAPublicKey(key)
		}
	}

	return nil, NewKeyNotFoundError()
}

func (r *KeyResolver) fetchKeySet(ctx context.Context) (*jsonWebKeySet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.jwksURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWKS request: %v", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch JWKS: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("JWKS endpoint returned %d", resp.StatusCode)
	}

	keySet := new(jsonWebKeySet)
	if err := json.NewDecoder(resp.Body).Decode(keySet); err != nil {
		return nil, fmt.Errorf("failed to decode JWKS: %v", err)
	}

	return keySet, nil
}

func parseRSAPublicKey(key jsonWebKey) (*rsa.PublicKey, error) {
	n, err := base64.RawURLEncoding.DecodeString(key.N)
	if err != nil {
		return nil, NewKeyNotFoundError()
	}

	e, err := base64.RawURLEncoding.DecodeString(key.E)
	if err != nil {
		return nil, NewKeyNotFoundError()
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(n),
		E: int(new(big.Int).SetBytes(e).Int64()),
	}, nil
}

func NewKeyResolver(jwksURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *KeyResolver {
	r := new(KeyResolver)

	r.jwksURL = jwksURL
	r.client = &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   10 * time.Second,
	}

	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	return r
}
