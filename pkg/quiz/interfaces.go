// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package quiz

import (
	"context"

	"github.com/canonical/trivia-service/internal/types"
)

type ServiceInterface interface {
	// NextQuestion selects one random question outside previousIDs,
	// restricted to categoryID when positive. A nil question with nil error
	// means the pool is exhausted and the quiz is complete.
	NextQuestion(ctx context.Context, categoryID int64, previousIDs []int64) (*types.Question, error)
}

type DatabaseInterface interface {
	ListCandidateQuestions(ctx context.Context, categoryID int64, previousIDs []int64) ([]types.Question, error)
}
