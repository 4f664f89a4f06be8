// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package categories

import (
	"context"

	"github.com/canonical/trivia-service/internal/types"
)

type ServiceInterface interface {
	ListCategories(ctx context.Context) (map[int64]string, error)
	ListCategoryQuestions(ctx context.Context, categoryID int64) (*CategoryQuestions, error)
}

type DatabaseInterface interface {
	ListCategories(ctx context.Context) ([]types.Category, error)
	GetCategory(ctx context.Context, id int64) (*types.Category, error)
	ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]types.Question, error)
}
