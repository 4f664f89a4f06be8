// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/canonical/trivia-service/internal/logging"
	"github.com/canonical/trivia-service/internal/monitoring"
	"github.com/canonical/trivia-service/internal/tracing"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var _ DBClientInterface = (*DBClient)(nil)

type Config struct {
	DSN             string
	MaxConns        int
	MinConns        int
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	TracingEnabled  bool
}

type DBClient struct {
	db *sql.DB

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *DBClient) Statement(ctx context.Context) sq.StatementBuilderType {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	if tx := TxFromContext(ctx); tx != nil {
		return builder.RunWith(tx)
	}

	return builder.RunWith(c.db)
}

// BeginTx starts a transaction on the underlying pool.
func (c *DBClient) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return c.db.BeginTx(ctx, nil)
}

// Migrate applies all pending goose migrations.
func (c *DBClient) Migrate(ctx context.Context) error {
	ctx, span := c.tracer.Start(ctx, "db.DBClient.Migrate")
	defer span.End()

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %v", err)
	}

	if err := goose.UpContext(ctx, c.db, "migrations"); err != nil {
		return fmt.Errorf("failed to apply migrations: %v", err)
	}

	return nil
}

func (c *DBClient) Close() error {
	return c.db.Close()
}

func NewDBClient(config Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*DBClient, error) {
	c := new(DBClient)

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	connConfig, err := pgx.ParseConfig(config.DSN)
	if err != nil {
		logger.Fatalf("invalid DSN: %v", err)
		return nil, fmt.Errorf("invalid DSN: %v", err)
	}

	if config.TracingEnabled {
		connConfig.Tracer = otelpgx.NewTracer()
	}

	c.db = stdlib.OpenDB(*connConfig)

	if config.MaxConns > 0 {
		c.db.SetMaxOpenConns(config.MaxConns)
	}
	if config.MinConns > 0 {
		c.db.SetMaxIdleConns(config.MinConns)
	}
	if config.MaxConnLifetime > 0 {
		c.db.SetConnMaxLifetime(config.MaxConnLifetime)
	}
	if config.MaxConnIdleTime > 0 {
		c.db.SetConnMaxIdleTime(config.MaxConnIdleTime)
	}

	return c, nil
}
