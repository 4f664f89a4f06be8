// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/trivia-service/internal/db"
	"github.com/canonical/trivia-service/internal/types"
)

// ListQuestionsPage retrieves one page of questions ordered by ID, plus the
// unfiltered total count. An out-of-range page yields an empty slice and is
// not an error.
func (s *Storage) ListQuestionsPage(ctx context.Context, page, limit int64) ([]types.Question, int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListQuestionsPage")
	defer span.End()

	pageSize := db.PageSize(limit)

	rows, err := s.db.Statement(ctx).
		Select("id", "question", "answer", "category", "difficulty").
		From("questions").
		OrderBy("id ASC").
		Limit(pageSize).
		Offset(db.Offset(page, pageSize)).
		QueryContext(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query questions: %v", err)
	}
	defer rows.Close()

	questions, err := scanQuestions(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	err = s.db.Statement(ctx).
		Select("COUNT(*)").
		From("questions").
		QueryRowContext(ctx).
		Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count questions: %v", err)
	}

	return questions, total, nil
}

// GetQuestion retrieves a single question by ID.
func (s *Storage) GetQuestion(ctx context.Context, id int64) (*types.Question, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetQuestion")
	defer span.End()

	row := s.db.Statement(ctx).
		Select("id", "question", "answer", "category", "difficulty").
		From("questions").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	question, err := scanQuestion(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query question: %v", err)
	}

	return question, nil
}

// CreateQuestion inserts a new question.
func (s *Storage) CreateQuestion(ctx context.Context, question *types.Question) (*types.Question, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.CreateQuestion")
	defer span.End()

	var id int64

	err := s.db.Statement(ctx).
		Insert("questions").
		Columns("question", "answer", "category", "difficulty").
		Values(question.Question, question.Answer, question.Category, question.Difficulty).
		Suffix("RETURNING id").
		QueryRowContext(ctx).
		Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to insert question: %v", err)
	}

	created := *question
	created.ID = id

	return &created, nil
}

// UpdateQuestion updates all mutable fields of an existing question.
func (s *Storage) UpdateQuestion(ctx context.Context, id int64, question *types.Question) (*types.Question, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.UpdateQuestion")
	defer span.End()

	result, err := s.db.Statement(ctx).
		Update("questions").
		Set("question", question.Question).
		Set("answer", question.Answer).
		Set("category", question.Category).
		Set("difficulty", question.Difficulty).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update question: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %v", err)
	}

	if rowsAffected == 0 {
		return nil, ErrNotFound
	}

	updated := *question
	updated.ID = id

	return &updated, nil
}

// DeleteQuestion removes a question.
func (s *Storage) DeleteQuestion(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.DeleteQuestion")
	defer span.End()

	result, err := s.db.Statement(ctx).
		Delete("questions").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete question: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %v", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// SearchQuestions retrieves all questions whose text contains the term,
// case-insensitively.
func (s *Storage) SearchQuestions(ctx context.Context, term string) ([]types.Question, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.SearchQuestions")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "question", "answer", "category", "difficulty").
		From("questions").
		Where(sq.ILike{"question": fmt.Sprintf("%%%s%%", term)}).
		OrderBy("id ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %v", err)
	}
	defer rows.Close()

	return scanQuestions(rows)
}

// ListQuestionsByCategory retrieves all questions in a category.
func (s *Storage) ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]types.Question, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListQuestionsByCategory")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "question", "answer", "category", "difficulty").
		From("questions").
		Where(sq.Eq{"category": categoryID}).
		OrderBy("id ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions by category: %v", err)
	}
	defer rows.Close()

	return scanQuestions(rows)
}

// ListCandidateQuestions retrieves the quiz candidate pool: every question
// whose ID is not in previousIDs, restricted to categoryID when positive.
func (s *Storage) ListCandidateQuestions(ctx context.Context, categoryID int64, previousIDs []int64) ([]types.Question, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListCandidateQuestions")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "question", "answer", "category", "difficulty").
		From("questions").
		OrderBy("id ASC")

	if len(previousIDs) > 0 {
		query = query.Where(sq.NotEq{"id": previousIDs})
	}
	if categoryID > 0 {
		query = query.Where(sq.Eq{"category": categoryID})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidate questions: %v", err)
	}
	defer rows.Close()

	return scanQuestions(rows)
}

// scanQuestion scans a database row into a Question struct.
func scanQuestion(row interface{ Scan(...interface{}) error }) (*types.Question, error) {
	question := &types.Question{}
	err := row.Scan(
		&question.ID,
		&question.Question,
		&question.Answer,
		&question.Category,
		&question.Difficulty,
	)
	if err != nil {
		return nil, err
	}

	return question, nil
}

func scanQuestions(rows *sql.Rows) ([]types.Question, error) {
	questions := make([]types.Question, 0)
	for rows.Next() {
		question, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan question: %v", err)
		}
		questions = append(questions, *question)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating questions: %v", err)
	}

	return questions, nil
}
