// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package quiz

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/canonical/trivia-service/internal/logging"
	"github.com/canonical/trivia-service/internal/monitoring"
	"github.com/canonical/trivia-service/internal/tracing"
	"github.com/canonical/trivia-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	db DatabaseInterface

	// pick is swappable in tests; defaults to a uniform random index.
	pick func(n int) int

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// NextQuestion computes the eligible pool and selects one element uniformly
// at random. Each call is independent; the only selection memory is what the
// caller supplies via previousIDs.
func (s *Service) NextQuestion(ctx context.Context, categoryID int64, previousIDs []int64) (*types.Question, error) {
	ctx, span := s.tracer.Start(ctx, "quiz.Service.NextQuestion")
	defer span.End()

	pool, err := s.db.ListCandidateQuestions(ctx, categoryID, previousIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build candidate pool: %w", err)
	}

	// An empty pool is the normal quiz-complete terminal state.
	if len(pool) == 0 {
		return nil, nil
	}

	question := pool[s.pick(len(pool))]

	return &question, nil
}

func NewService(
	db DatabaseInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.db = db
	s.pick = rand.IntN

	s.monitor = monitor
	s.tracer = tracer
	s.logger = logger

	return s
}
