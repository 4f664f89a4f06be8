// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/trivia-service/internal/types"
)

type StorageInterface interface {
	// Category operations
	ListCategories(ctx context.Context) ([]types.Category, error)
	GetCategory(ctx context.Context, id int64) (*types.Category, error)

	// Question CRUD operations
	ListQuestionsPage(ctx context.Context, page, limit int64) ([]types.Question, int64, error)
	GetQuestion(ctx context.Context, id int64) (*types.Question, error)
	CreateQuestion(ctx context.Context, question *types.Question) (*types.Question, error)
	UpdateQuestion(ctx context.Context, id int64, question *types.Question) (*types.Question, error)
	DeleteQuestion(ctx context.Context, id int64) error

	// Search and filtering
	SearchQuestions(ctx context.Context, term string) ([]types.Question, error)
	ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]types.Question, error)

	// Quiz candidate pool: questions not in previousIDs, restricted to
	// categoryID when it is positive.
	ListCandidateQuestions(ctx context.Context, categoryID int64, previousIDs []int64) ([]types.Question, error)
}
