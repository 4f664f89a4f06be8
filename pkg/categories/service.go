// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package categories

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/trivia-service/internal/logging"
	"github.com/canonical/trivia-service/internal/monitoring"
	"github.com/canonical/trivia-service/internal/storage"
	"github.com/canonical/trivia-service/internal/tracing"
	"github.com/canonical/trivia-service/internal/types"
)

var ErrCategoryNotFound = errors.New("category not found")

// CategoryQuestions is the question listing for one category.
type CategoryQuestions struct {
	Questions       []types.Question `json:"questions"`
	TotalQuestions  int              `json:"total_questions"`
	CurrentCategory types.Category   `json:"current_category"`
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	db DatabaseInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// ListCategories returns all categories as an id to label mapping.
func (s *Service) ListCategories(ctx context.Context) (map[int64]string, error) {
	ctx, span := s.tracer.Start(ctx, "categories.Service.ListCategories")
	defer span.End()

	categories, err := s.db.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	formatted := make(map[int64]string, len(categories))
	for _, category := range categories {
		formatted[category.ID] = category.Type
	}

	return formatted, nil
}

func (s *Service) ListCategoryQuestions(ctx context.Context, categoryID int64) (*CategoryQuestions, error) {
	ctx, span := s.tracer.Start(ctx, "categories.Service.ListCategoryQuestions")
	defer span.End()

	category, err := s.db.GetCategory(ctx, categoryID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	questions, err := s.db.ListQuestionsByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions for category %d: %w", categoryID, err)
	}

	return &CategoryQuestions{
		Questions:       questions,
		TotalQuestions:  len(questions),
		CurrentCategory: *category,
	}, nil
}

func NewService(
	db DatabaseInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.db = db

	s.monitor = monitor
	s.tracer = tracer
	s.logger = logger

	return s
}
