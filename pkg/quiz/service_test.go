// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package quiz

import (
	"context"
	"fmt"
	"slices"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/trivia-service/internal/logging"
	"github.com/canonical/trivia-service/internal/monitoring"
	"github.com/canonical/trivia-service/internal/tracing"
	"github.com/canonical/trivia-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package quiz -destination ./mock_interfaces.go -source=./interfaces.go

func newTestQuizService(t *testing.T) (*Service, *MockDatabaseInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockDB := NewMockDatabaseInterface(ctrl)
	svc := NewService(mockDB, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	return svc, mockDB
}

func TestService_NextQuestion_PicksFromPool(t *testing.T) {
	svc, mockDB := newTestQuizService(t)

	pool := []types.Question{
		{ID: 3, Question: "q3", Answer: "a3", Category: 2, Difficulty: 1},
		{ID: 7, Question: "q7", Answer: "a7", Category: 2, Difficulty: 2},
		{ID: 11, Question: "q11", Answer: "a11", Category: 2, Difficulty: 3},
	}
	previous := []int64{1, 5}

	mockDB.EXPECT().ListCandidateQuestions(gomock.Any(), int64(2), previous).Return(pool, nil)

	// Pin the selection to the middle of the pool.
	svc.pick = func(n int) int {
		if n != 3 {
			t.Errorf("expected pick over a pool of 3, got %d", n)
		}
		return 1
	}

	question, err := svc.NextQuestion(context.Background(), 2, previous)
	if err != nil {
		t.Fatalf("expected selection to succeed, got %v", err)
	}
	if question == nil || question.ID != 7 {
		t.Fatalf("expected question 7, got %+v", question)
	}
	if slices.Contains(previous, question.ID) {
		t.Errorf("selected question %d was already played", question.ID)
	}
}

func TestService_NextQuestion_ExhaustedPool(t *testing.T) {
	svc, mockDB := newTestQuizService(t)

	mockDB.EXPECT().ListCandidateQuestions(gomock.Any(), int64(0), []int64{1, 2, 3}).Return([]types.Question{}, nil)

	question, err := svc.NextQuestion(context.Background(), 0, []int64{1, 2, 3})
	if err != nil {
		t.Fatalf("expected no error on an exhausted pool, got %v", err)
	}
	if question != nil {
		t.Errorf("expected no question on an exhausted pool, got %+v", question)
	}
}

func TestService_NextQuestion_DatabaseError(t *testing.T) {
	svc, mockDB := newTestQuizService(t)

	mockDB.EXPECT().ListCandidateQuestions(gomock.Any(), int64(1), gomock.Any()).Return(nil, fmt.Errorf("connection refused"))

	question, err := svc.NextQuestion(context.Background(), 1, nil)
	if err == nil {
		t.Fatal("expected an error on database failure")
	}
	if question != nil {
		t.Errorf("expected no question on database failure, got %+v", question)
	}
}

func TestService_NextQuestion_DefaultPickStaysInBounds(t *testing.T) {
	svc, mockDB := newTestQuizService(t)

	pool := []types.Question{
		{ID: 3, Question: "q3", Answer: "a3", Category: 2, Difficulty: 1},
		{ID: 7, Question: "q7", Answer: "a7", Category: 2, Difficulty: 2},
	}
	mockDB.EXPECT().ListCandidateQuestions(gomock.Any(), int64(2), gomock.Any()).Return(pool, nil).Times(20)

	for i := 0; i < 20; i++ {
		question, err := svc.NextQuestion(context.Background(), 2, nil)
		if err != nil {
			t.Fatalf("selection %d failed: %v", i, err)
		}
		if question.ID != 3 && question.ID != 7 {
			t.Fatalf("selection %d returned a question outside the pool: %+v", i, question)
		}
	}
}
