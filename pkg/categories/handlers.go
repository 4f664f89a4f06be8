// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package categories

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/trivia-service/internal/http/types"
	"github.com/canonical/trivia-service/internal/logging"
	"github.com/canonical/trivia-service/internal/monitoring"
	"github.com/canonical/trivia-service/internal/tracing"
)

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/categories", a.handleListCategories)
	mux.Get("/categories/{category_id}/questions", a.handleListCategoryQuestions)
}

func (a *API) handleListCategories(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	categories, err := a.service.ListCategories(r.Context())
	if err != nil {
		a.logger.Errorf("failed to list categories: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":    true,
		"categories": categories,
	})
}

func (a *API) handleListCategoryQuestions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	categoryID, err := strconv.ParseInt(chi.URLParam(r, "category_id"), 10, 64)
	if err != nil {
		httptypes.WriteError(w, http.StatusNotFound)
		return
	}

	categoryQuestions, err := a.service.ListCategoryQuestions(r.Context(), categoryID)
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			httptypes.WriteError(w, http.StatusNotFound)
			return
		}
		a.logger.Errorf("failed to list questions for category %d: %v", categoryID, err)
		httptypes.WriteError(w, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":          true,
		"questions":        categoryQuestions.Questions,
		"total_questions":  categoryQuestions.TotalQuestions,
		"current_category": categoryQuestions.CurrentCategory,
	})
}

func NewAPI(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	a := new(API)

	a.service = service

	a.monitor = monitor
	a.tracer = tracer
	a.logger = logger

	return a
}
