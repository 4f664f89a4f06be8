// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"fmt"
	"strings"
)

type Config struct {
	Domain            string
	Issuer            string
	Audience          string
	JWKSURL           string
	AllowedAlgorithms []string
}

// NewConfig derives the issuer and JWKS endpoint from the provider domain.
// allowedAlgorithms is a comma-separated allow-list of signing algorithms;
// tokens declaring anything else are rejected outright.
func NewConfig(domain, audience, allowedAlgorithms string) *Config {
	c := &Config{
		Domain:   domain,
		Issuer:   fmt.Sprintf("https://%s/", domain),
		Audience: audience,
		JWKSURL:  fmt.Sprintf("https://%s/.well-known/jwks.json", domain),
	}

	for _, alg := range strings.Split(allowedAlgorithms, ",") {
		if alg = strings.TrimSpace(alg); alg != "" {
			c.AllowedAlgorithms = append(c.AllowedAlgorithms, alg)
		}
	}

	return c
}
