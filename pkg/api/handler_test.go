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

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgeworker/navgate/pkg/compat"
	"github.com/edgeworker/navgate/pkg/errors"
	"github.com/edgeworker/navgate/pkg/server"
	"github.com/edgeworker/navgate/pkg/status"
)

type stubSource struct {
	version string
	err     error
	calls   int
}

func (s *stubSource) Version(context.Context) (string, error) {
	s.calls++
	return s.version, s.err
}

type navigationBody struct {
	RawVersion        string `json:"rawVersion"`
	NormalizedVersion string `json:"normalizedVersion"`
	Mode              string `json:"mode"`
	Threshold         string `json:"threshold"`
}

func get(t *testing.T, h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func withVersion(path, raw string) string {
	return path + "?" + url.Values{versionParam: []string{raw}}.Encode()
}

func TestHandleNavigation(t *testing.T) {
	tests := []struct {
		raw        string
		mode       string
		normalized string
	}{
		{"3.1.7", "current", "3.1.7"},
		{"3.1.6", "legacy", "3.1.6"},
		{"3.1.7rc1", "current", "3.1.7"},
		{"3.1.7.dev0", "current", "3.1.7"},
		{"v3.1.7", "current", "3.1.7"},
		{"2.9.9", "legacy", "2.9.9"},
		{"", "unknown", ""},
		{"invalid", "unknown", ""},
		{"3.1.7-beta", "unknown", ""},
	}

	h := NewHandler()
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.raw), func(t *testing.T) {
			rec := get(t, h.HandleNavigation, withVersion(PathNavigation, tt.raw))
			require.Equal(t, http.StatusOK, rec.Code)

			var body navigationBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.raw, body.RawVersion)
			assert.Equal(t, tt.mode, body.Mode)
			assert.Equal(t, tt.normalized, body.NormalizedVersion)
			assert.Equal(t, "3.1.6", body.Threshold)
		})
	}
}

func TestHandleNavigation_UnknownOmitsNormalizedVersion(t *testing.T) {
	rec := get(t, NewHandler().HandleNavigation, withVersion(PathNavigation, "garbage"))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotContains(t, body, "normalizedVersion")
}

func TestHandleNavigation_MissingVersion(t *testing.T) {
	rec := get(t, NewHandler().HandleNavigation, PathNavigation)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body server.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, string(errors.ErrCodeInvalidRequest), body.Code)
	assert.False(t, body.Retryable)
}

func TestHandleNavigation_VersionSource(t *testing.T) {
	t.Run("absent parameter uses source", func(t *testing.T) {
		src := &stubSource{version: "3.1.6"}
		rec := get(t, NewHandler(WithVersionSource(src)).HandleNavigation, PathNavigation)
		require.Equal(t, http.StatusOK, rec.Code)

		var body navigationBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "legacy", body.Mode)
		assert.Equal(t, 1, src.calls)
	})

	t.Run("explicit parameter wins", func(t *testing.T) {
		src := &stubSource{version: "3.1.6"}
		rec := get(t, NewHandler(WithVersionSource(src)).HandleNavigation, withVersion(PathNavigation, "3.2.0"))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Zero(t, src.calls)
	})

	t.Run("empty reported version is unknown", func(t *testing.T) {
		src := &stubSource{version: ""}
		rec := get(t, NewHandler(WithVersionSource(src)).HandleNavigation, PathNavigation)
		require.Equal(t, http.StatusOK, rec.Code)

		var body navigationBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "unknown", body.Mode)
	})

	t.Run("structured failure keeps its code", func(t *testing.T) {
		src := &stubSource{err: errors.New(errors.ErrCodeTimeout, "status request timed out")}
		rec := get(t, NewHandler(WithVersionSource(src)).HandleNavigation, PathNavigation)
		require.Equal(t, http.StatusGatewayTimeout, rec.Code)

		var body server.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, string(errors.ErrCodeTimeout), body.Code)
		assert.True(t, body.Retryable)
	})

	t.Run("plain failure is unavailable", func(t *testing.T) {
		src := &stubSource{err: fmt.Errorf("dial tcp: connection refused")}
		rec := get(t, NewHandler(WithVersionSource(src)).HandleNavigation, PathNavigation)
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var body server.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, string(errors.ErrCodeUnavailable), body.Code)
		assert.True(t, body.Retryable)
	})
}

func TestHandleNavigation_StatusBackend(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != status.VersionPath {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"version":"3.1.7rc2"}`))
	}))
	defer backend.Close()

	h := NewHandler(WithVersionSource(status.NewClient(backend.URL)), WithTimeout(2*time.Second))
	rec := get(t, h.HandleNavigation, PathNavigation)
	require.Equal(t, http.StatusOK, rec.Code)

	var body navigationBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "3.1.7rc2", body.RawVersion)
	assert.Equal(t, "3.1.7", body.NormalizedVersion)
	assert.Equal(t, "current", body.Mode)
}

func TestHandleCompat(t *testing.T) {
	h := NewHandler()

	t.Run("valid version", func(t *testing.T) {
		rec := get(t, h.HandleCompat, withVersion(PathCompat, "3.1.0rc1"))
		require.Equal(t, http.StatusOK, rec.Code)

		var gates compat.Gates
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &gates))
		assert.Equal(t, "3.1.0", gates.Version)
		assert.True(t, gates.V3_0Plus)
		assert.True(t, gates.V3_1Plus)
		assert.False(t, gates.V3_2Plus)
	})

	t.Run("unparseable version", func(t *testing.T) {
		rec := get(t, h.HandleCompat, withVersion(PathCompat, "not-a-version"))
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body server.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, string(errors.ErrCodeInvalidRequest), body.Code)
		assert.Equal(t, "not-a-version", body.Details[versionParam])
	})

	t.Run("missing version", func(t *testing.T) {
		rec := get(t, h.HandleCompat, PathCompat)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandlers_MethodNotAllowed(t *testing.T) {
	h := NewHandler()
	for path, handler := range h.Routes() {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler(rec, httptest.NewRequest(http.MethodPost, withVersion(path, "3.1.7"), nil))
			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"))
		})
	}
}

func TestRoutesThroughServer(t *testing.T) {
	t.Setenv(server.EnvPort, "")
	s := server.New(server.WithName(name), server.WithHandler(NewHandler().Routes()))

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, withVersion(PathNavigation, "3.1.7"), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestHandleNavigation_Concurrent(t *testing.T) {
	h := NewHandler()
	versions := []string{"3.1.7", "3.1.6", "", "invalid", "v4.0.0"}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(raw string) {
			defer wg.Done()
			rec := httptest.NewRecorder()
			h.HandleNavigation(rec, httptest.NewRequest(http.MethodGet, withVersion(PathNavigation, raw), nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		}(versions[i%len(versions)])
	}
	wg.Wait()
}

func TestHandlerOptionsFromEnv(t *testing.T) {
	t.Setenv(EnvStatusURL, "")
	assert.Empty(t, handlerOptionsFromEnv())

	t.Setenv(EnvStatusURL, "http://backend:8080")
	h := NewHandler(handlerOptionsFromEnv()...)
	require.NotNil(t, h.source)
}

func TestConstants(t *testing.T) {
	assert.Equal(t, "navgated", name)
	assert.Equal(t, "dev", versionDefault)
	assert.NotEmpty(t, version)
	assert.NotEmpty(t, commit)
	assert.NotEmpty(t, date)
}
