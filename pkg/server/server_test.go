// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/edgeworker/navgate/pkg/errors"
)

func newRoutedServer(t *testing.T) *Server {
	t.Helper()
	t.Setenv(EnvPort, "")
	return New(
		WithName("navgated-test"),
		WithVersion("0.0.1"),
		WithHandler(map[string]http.HandlerFunc{
			"/v1/echo": func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"ok":true}`))
			},
			"/v1/fail": func(w http.ResponseWriter, r *http.Request) {
				WriteErrorFromErr(w, r, errors.New(errors.ErrCodeInvalidRequest, "bad input"))
			},
		}),
	)
}

func TestServer_HealthAndReady(t *testing.T) {
	s := newRoutedServer(t)
	h := s.Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("health: expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("ready before start: expected 503, got %d", rec.Code)
	}

	s.SetReady(true)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("ready: expected 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if resp.Status != "ready" {
		t.Errorf("expected status ready, got %s", resp.Status)
	}
}

func TestServer_HealthMethodNotAllowed(t *testing.T) {
	s := newRoutedServer(t)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/health", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
	if rec.Header().Get("Allow") != http.MethodGet {
		t.Errorf("expected Allow GET, got %q", rec.Header().Get("Allow"))
	}
}

func TestServer_RootListsRoutes(t *testing.T) {
	s := newRoutedServer(t)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp InfoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if resp.Name != "navgated-test" || resp.Version != "0.0.1" {
		t.Errorf("unexpected identity: %+v", resp)
	}

	want := []string{"GET /v1/echo", "GET /v1/fail", "GET /health", "GET /ready", "GET /metrics"}
	if strings.Join(resp.Routes, ",") != strings.Join(want, ",") {
		t.Errorf("routes = %v, want %v", resp.Routes, want)
	}
}

func TestServer_UnknownRoute(t *testing.T) {
	s := newRoutedServer(t)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestServer_APIRouteHasMiddleware(t *testing.T) {
	s := newRoutedServer(t)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/echo", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	for _, h := range []string{"X-Request-Id", "X-API-Version", "X-RateLimit-Limit"} {
		if rec.Header().Get(h) == "" {
			t.Errorf("expected %s header", h)
		}
	}
}

func TestServer_StructuredErrorResponse(t *testing.T) {
	s := newRoutedServer(t)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/fail", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if resp.Code != string(errors.ErrCodeInvalidRequest) {
		t.Errorf("expected INVALID_REQUEST, got %s", resp.Code)
	}
	if resp.RequestID != rec.Header().Get("X-Request-Id") {
		t.Errorf("expected request ID %s in body, got %s", rec.Header().Get("X-Request-Id"), resp.RequestID)
	}
	if resp.Retryable {
		t.Error("expected non-retryable error")
	}
}

func TestWriteErrorFromErr_PlainError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	WriteErrorFromErr(rec, req, fmt.Errorf("secret detail"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "secret detail") {
		t.Error("plain error message must not be exposed")
	}
}

func TestWriteErrorFromErr_WrappedStructuredError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	cause := stderrors.New("connection refused")
	err := fmt.Errorf("fetch: %w", errors.WrapWithContext(errors.ErrCodeUnavailable,
		"status endpoint unreachable", cause, map[string]any{"url": "http://backend"}))
	WriteErrorFromErr(rec, req, err)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rec.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if !resp.Retryable {
		t.Error("expected retryable error")
	}
	if resp.Details["url"] != "http://backend" {
		t.Errorf("expected url detail, got %v", resp.Details)
	}
}

func TestServer_RunAndShutdown(t *testing.T) {
	t.Setenv(EnvPort, "")
	s := New(WithAddress("127.0.0.1"), WithPort(0), WithShutdownTimeout(time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for !s.IsReady() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if !s.IsReady() {
		t.Fatal("server did not become ready")
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	if s.IsReady() {
		t.Error("expected server to be not ready after shutdown")
	}
}
