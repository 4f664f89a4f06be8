// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	AuthenticationEnabled bool   `envconfig:"authentication_enabled" default:"true"`
	AuthDomain            string `envconfig:"auth_domain"`
	AuthAudience          string `envconfig:"auth_audience" default:"capstone-trivia"`
	AuthAllowedAlgorithms string `envconfig:"auth_allowed_algorithms" default:"RS256"`

	DSN               string        `envconfig:"DSN" default:""`
	DBMaxConns        int           `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int           `envconfig:"db_min_conns" default:"5"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`
}
