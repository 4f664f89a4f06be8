// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/canonical/trivia-service/internal/db"
	httptypes "github.com/canonical/trivia-service/internal/http/types"
	"github.com/canonical/trivia-service/internal/logging"
	"github.com/canonical/trivia-service/internal/monitoring"
	"github.com/canonical/trivia-service/internal/storage"
	"github.com/canonical/trivia-service/internal/tracing"
	"github.com/canonical/trivia-service/pkg/authentication"
	"github.com/canonical/trivia-service/pkg/categories"
	"github.com/canonical/trivia-service/pkg/metrics"
	"github.com/canonical/trivia-service/pkg/questions"
	"github.com/canonical/trivia-service/pkg/quiz"
	"github.com/canonical/trivia-service/pkg/status"
)

func NewRouter(
	s storage.StorageInterface,
	dbClient *db.DBClient,
	authz authentication.MiddlewareInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
		middleware.RequestLogger(logging.NewLogFormatter(logger)), // LogFormatter will only work if logger is set to DEBUG level
	)

	if dbClient != nil {
		middlewares = append(middlewares, db.TransactionMiddleware(dbClient, logger))
	}

	router.Use(middlewares...)

	// Fixed error bodies for unmatched routes and disallowed methods
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httptypes.WriteError(w, http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httptypes.WriteError(w, http.StatusMethodNotAllowed)
	})

	questions.NewAPI(
		questions.NewService(s, tracer, monitor, logger),
		authz,
		tracer,
		monitor,
		logger,
	).RegisterEndpoints(router)
	categories.NewAPI(
		categories.NewService(s, tracer, monitor, logger),
		tracer,
		monitor,
		logger,
	).RegisterEndpoints(router)
	quiz.NewAPI(
		quiz.NewService(s, tracer, monitor, logger),
		authz,
		tracer,
		monitor,
		logger,
	).RegisterEndpoints(router)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func middlewareCORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(
		cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
			AllowedHeaders: []string{"Content-Type", "Authorization"},
		},
	)
}
