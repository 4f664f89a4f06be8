// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"

	sq "github.com/Masterminds/squirrel"
)

type DBClientInterface interface {
	// Statement returns a squirrel statement builder bound to the current
	// request transaction if one is present in ctx, the pool otherwise.
	Statement(ctx context.Context) sq.StatementBuilderType
	Migrate(ctx context.Context) error
	Close() error
}
