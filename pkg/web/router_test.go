// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/trivia-service/internal/logging"
	"github.com/canonical/trivia-service/internal/monitoring"
	"github.com/canonical/trivia-service/internal/tracing"
	"github.com/canonical/trivia-service/internal/types"
	"github.com/canonical/trivia-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package web -destination ./mock_storage.go -source=../../internal/storage/interfaces.go

func newTestRouter(t *testing.T) (http.Handler, *MockStorageInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := NewMockStorageInterface(ctrl)
	logger := logging.NewNoopLogger()

	router := NewRouter(
		mockStorage,
		nil,
		authentication.NewNoopMiddleware(logger),
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logger,
	)

	return router, mockStorage
}

func TestRouter_UnmatchedRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/no-such-endpoint", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	if res.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", res.Code)
	}

	body := make(map[string]interface{})
	if err := json.Unmarshal(res.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if body["message"] != "Resource Not Found" {
		t.Errorf("expected message %q, got %v", "Resource Not Found", body["message"])
	}
	if body["success"] != false {
		t.Error("expected success flag to be false")
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/categories", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	if res.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", res.Code)
	}

	body := make(map[string]interface{})
	if err := json.Unmarshal(res.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if body["message"] != "Method Not Allowed" {
		t.Errorf("expected message %q, got %v", "Method Not Allowed", body["message"])
	}
}

func TestRouter_RoutesRegistered(t *testing.T) {
	router, mockStorage := newTestRouter(t)

	mockStorage.EXPECT().ListCategories(gomock.Any()).Return([]types.Category{
		{ID: 1, Type: "Science"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.Code)
	}
}

func TestRouter_StatusEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/status", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.Code)
	}
}
