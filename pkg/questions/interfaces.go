// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package questions

import (
	"context"

	"github.com/canonical/trivia-service/internal/types"
)

type ServiceInterface interface {
	ListQuestions(ctx context.Context, page, limit int64) (*QuestionPage, error)
	CreateQuestion(ctx context.Context, question *types.Question) (*types.Question, error)
	UpdateQuestion(ctx context.Context, id int64, question *types.Question) (*types.Question, error)
	DeleteQuestion(ctx context.Context, id int64) error
	SearchQuestions(ctx context.Context, term string) ([]types.Question, error)
}

type DatabaseInterface interface {
	ListQuestionsPage(ctx context.Context, page, limit int64) ([]types.Question, int64, error)
	CreateQuestion(ctx context.Context, question *types.Question) (*types.Question, error)
	UpdateQuestion(ctx context.Context, id int64, question *types.Question) (*types.Question, error)
	DeleteQuestion(ctx context.Context, id int64) error
	SearchQuestions(ctx context.Context, term string) ([]types.Question, error)
	ListCategories(ctx context.Context) ([]types.Category, error)
}
