// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/trivia-service/internal/types"
)

// ListCategories retrieves all categories ordered by label.
func (s *Storage) ListCategories(ctx context.Context) ([]types.Category, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListCategories")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "type").
		From("categories").
		OrderBy("type ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %v", err)
	}
	defer rows.Close()

	categories := make([]types.Category, 0)
	for rows.Next() {
		var category types.Category
		if err := rows.Scan(&category.ID, &category.Type); err != nil {
			return nil, fmt.Errorf("failed to scan category: %v", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %v", err)
	}

	return categories, nil
}

// GetCategory retrieves a single category by ID.
func (s *Storage) GetCategory(ctx context.Context, id int64) (*types.Category, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetCategory")
	defer span.End()

	category := new(types.Category)

	err := s.db.Statement(ctx).
		Select("id", "type").
		From("categories").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&category.ID, &category.Type)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query category: %v", err)
	}

	return category, nil
}
