// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package questions

import "github.com/canonical/trivia-service/internal/types"

// QuestionPage is one window over the ordered question collection plus the
// context the listing endpoint returns alongside it.
type QuestionPage struct {
	Questions      []types.Question `json:"questions"`
	TotalQuestions int64            `json:"total_questions"`
	Categories     map[int64]string `json:"categories"`
}
