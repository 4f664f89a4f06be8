// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

// Question is a single trivia question.
type Question struct {
	ID         int64  `json:"id"`
	Question   string `json:"question" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
	Category   int64  `json:"category" validate:"required,gte=1"`
	Difficulty int    `json:"difficulty" validate:"required,gte=1"`
}

// Category is a trivia question category.
type Category struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}
