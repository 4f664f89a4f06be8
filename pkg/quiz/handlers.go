// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package quiz

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/trivia-service/internal/http/types"
	"github.com/canonical/trivia-service/internal/logging"
	"github.com/canonical/trivia-service/internal/monitoring"
	"github.com/canonical/trivia-service/internal/tracing"
	"github.com/canonical/trivia-service/pkg/authentication"
)

const PermissionPlayQuiz = "play-quiz"

type playPayload struct {
	QuizCategory      *quizCategory `json:"quiz_category"`
	PreviousQuestions []int64       `json:"previous_questions"`
}

type quizCategory struct {
	ID int64 `json:"id"`
}

type API struct {
	service ServiceInterface
	authz   authentication.MiddlewareInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.With(a.authz.RequirePermission(PermissionPlayQuiz)).
		Post("/quizzes", a.handlePlayQuiz)
}

func (a *API) handlePlayQuiz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	defer r.Body.Close()

	var payload playPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest)
		return
	}

	// A category object with id 0 means "any category"; a request with no
	// category object at all is malformed.
	if payload.QuizCategory == nil {
		httptypes.WriteError(w, http.StatusBadRequest)
		return
	}

	question, err := a.service.NextQuestion(r.Context(), payload.QuizCategory.ID, payload.PreviousQuestions)
	if err != nil {
		a.logger.Errorf("failed to select quiz question: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":  true,
		"question": question,
	})
}

func NewAPI(
	service ServiceInterface,
	authz authentication.MiddlewareInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	a := new(API)

	a.service = service
	a.authz = authz

	a.monitor = monitor
	a.tracer = tracer
	a.logger = logger

	return a
}
