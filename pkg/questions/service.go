// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package questions

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

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	db DatabaseInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) ListQuestions(ctx context.Context, page, limit int64) (*QuestionPage, error) {
	ctx, span := s.tracer.Start(ctx, "questions.Service.ListQuestions")
	defer span.End()

	qs, total, err := s.db.ListQuestionsPage(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	categories, err := s.db.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categoryMap := make(map[int64]string, len(categories))
	for _, category := range categories {
		categoryMap[category.ID] = category.Type
	}

	return &QuestionPage{
		Questions:      qs,
		TotalQuestions: total,
		Categories:     categoryMap,
	}, nil
}

func (s *Service) CreateQuestion(ctx context.Context, question *types.Question) (*types.Question, error) {
	ctx, span := s.tracer.Start(ctx, "questions.Service.CreateQuestion")
	defer span.End()

	return s.db.CreateQuestion(ctx, question)
}

func (s *Service) UpdateQuestion(ctx context.Context, id int64, question *types.Question) (*types.Question, error) {
	ctx, span := s.tracer.Start(ctx, "questions.Service.UpdateQuestion")
	defer span.End()

	updated, err := s.db.UpdateQuestion(ctx, id, question)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeleteQuestion(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "questions.Service.DeleteQuestion")
	defer span.End()

	if err := s.db.DeleteQuestion(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrQuestionNotFound
		}
		return err
	}
	return nil
}

func (s *Service) SearchQuestions(ctx context.Context, term string) ([]types.Question, error) {
	ctx, span := s.tracer.Start(ctx, "questions.Service.SearchQuestions")
	defer span.End()

	return s.db.SearchQuestions(ctx, term)
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
