// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package questions

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/canonical/trivia-service/internal/http/types"
	"github.com/canonical/trivia-service/internal/logging"
	"github.com/canonical/trivia-service/internal/monitoring"
	"github.com/canonical/trivia-service/internal/tracing"
	"github.com/canonical/trivia-service/internal/types"
	"github.com/canonical/trivia-service/pkg/authentication"
)

const (
	PermissionAddQuestion    = "add-question"
	PermissionEditQuestion   = "edit-question"
	PermissionDeleteQuestion = "delete-question"
)

type API struct {
	service ServiceInterface
	authz   authentication.MiddlewareInterface

	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/questions", a.handleListQuestions)
	mux.Post("/questions/search", a.handleSearchQuestions)
	mux.With(a.authz.RequirePermission(PermissionAddQuestion)).
		Post("/questions", a.handleCreateQuestion)
	mux.With(a.authz.RequirePermission(PermissionEditQuestion)).
		Patch("/questions/{question_id}", a.handleUpdateQuestion)
	mux.With(a.authz.RequirePermission(PermissionDeleteQuestion)).
		Delete("/questions/{question_id}", a.handleDeleteQuestion)
}

func (a *API) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 0)

	questionPage, err := a.service.ListQuestions(r.Context(), page, limit)
	if err != nil {
		a.logger.Errorf("failed to list questions: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError)
		return
	}

	// An empty window for the requested page is mapped to a not-found
	// condition here, not in the pagination logic.
	if len(questionPage.Questions) == 0 {
		httptypes.WriteError(w, http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":          true,
		"questions":        questionPage.Questions,
		"total_questions":  questionPage.TotalQuestions,
		"categories":       questionPage.Categories,
		"current_category": nil,
	})
}

func (a *API) handleCreateQuestion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	defer r.Body.Close()

	var question types.Question
	if err := json.NewDecoder(r.Body).Decode(&question); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest)
		return
	}

	if err := a.validate.Struct(question); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest)
		return
	}

	created, err := a.service.CreateQuestion(r.Context(), &question)
	if err != nil {
		a.logger.Errorf("failed to create question: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"id":      created.ID,
	})
}

func (a *API) handleUpdateQuestion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	defer r.Body.Close()

	id, err := strconv.ParseInt(chi.URLParam(r, "question_id"), 10, 64)
	if err != nil {
		httptypes.WriteError(w, http.StatusNotFound)
		return
	}

	var question types.Question
	if err := json.NewDecoder(r.Body).Decode(&question); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest)
		return
	}

	if err := a.validate.Struct(question); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest)
		return
	}

	updated, err := a.service.UpdateQuestion(r.Context(), id, &question)
	if err != nil {
		if errors.Is(err, ErrQuestionNotFound) {
			httptypes.WriteError(w, http.StatusNotFound)
			return
		}
		a.logger.Errorf("failed to update question %d: %v", id, err)
		httptypes.WriteError(w, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":  true,
		"question": updated,
	})
}

func (a *API) handleDeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "question_id"), 10, 64)
	if err != nil {
		httptypes.WriteError(w, http.StatusNotFound)
		return
	}

	if err := a.service.DeleteQuestion(r.Context(), id); err != nil {
		if errors.Is(err, ErrQuestionNotFound) {
			httptypes.WriteError(w, http.StatusNotFound)
			return
		}
		a.logger.Errorf("failed to delete question %d: %v", id, err)
		httptypes.WriteError(w, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleSearchQuestions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	defer r.Body.Close()

	var payload struct {
		SearchTerm string `json:"searchTerm"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest)
		return
	}

	questions, err := a.service.SearchQuestions(r.Context(), payload.SearchTerm)
	if err != nil {
		a.logger.Errorf("failed to search questions: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":   true,
		"questions": questions,
	})
}

// queryInt parses an integer query parameter, falling back to def when the
// parameter is absent or not numeric.
func queryInt(r *http.Request, name string, def int64) int64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return def
	}

	return value
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
	a.validate = validator.New()

	a.monitor = monitor
	a.tracer = tracer
	a.logger = logger

	return a
}
