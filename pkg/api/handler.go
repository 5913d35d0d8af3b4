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
	stderrors "errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/edgeworker/navgate/pkg/compat"
	"github.com/edgeworker/navgate/pkg/defaults"
	"github.com/edgeworker/navgate/pkg/errors"
	"github.com/edgeworker/navgate/pkg/navigation"
	"github.com/edgeworker/navgate/pkg/serializer"
	"github.com/edgeworker/navgate/pkg/server"
)

const (
	PathNavigation = "/v1/navigation"
	PathCompat     = "/v1/compat"

	versionParam = "version"
)

// VersionSource supplies the raw backend version when a request omits it.
// *status.Client implements it.
type VersionSource interface {
	Version(ctx context.Context) (string, error)
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithVersionSource sets the fallback used when the version parameter is absent.
func WithVersionSource(src VersionSource) HandlerOption {
	return func(h *Handler) {
		h.source = src
	}
}

// WithTimeout bounds the version lookup of a single request.
func WithTimeout(d time.Duration) HandlerOption {
	return func(h *Handler) {
		if d > 0 {
			h.timeout = d
		}
	}
}

// Handler serves the navigation and compat endpoints.
type Handler struct {
	source  VersionSource
	timeout time.Duration
}

// NewHandler returns a Handler with the given options applied.
func NewHandler(opts ...HandlerOption) *Handler {
	h := &Handler{
		timeout: defaults.NavigationHandlerTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes returns the handlers keyed by path, ready for server.WithHandler.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		PathNavigation: h.HandleNavigation,
		PathCompat:     h.HandleCompat,
	}
}

// HandleNavigation handles GET /v1/navigation.
func (h *Handler) HandleNavigation(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	raw, err := h.rawVersion(r)
	if err != nil {
		server.WriteErrorFromErr(w, r, err)
		return
	}

	res := navigation.Resolve(raw)
	navigationDecisions.WithLabelValues(res.Mode.String()).Inc()

	slog.Debug("navigation resolved",
		"requestID", server.RequestIDFromContext(r.Context()),
		"rawVersion", res.RawVersion,
		"normalizedVersion", res.NormalizedVersion,
		"mode", res.Mode.String(),
	)

	serializer.RespondJSON(w, http.StatusOK, res)
}

// HandleCompat handles GET /v1/compat.
func (h *Handler) HandleCompat(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	raw, err := h.rawVersion(r)
	if err != nil {
		server.WriteErrorFromErr(w, r, err)
		return
	}

	gates, err := compat.Evaluate(raw)
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			err.Error(), false, map[string]any{versionParam: raw})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, gates)
}

// rawVersion returns the version query parameter, falling back to the
// configured VersionSource when the parameter is absent.
func (h *Handler) rawVersion(r *http.Request) (string, error) {
	query := r.URL.Query()
	if query.Has(versionParam) {
		return query.Get(versionParam), nil
	}

	if h.source == nil {
		return "", errors.New(errors.ErrCodeInvalidRequest,
			"version query parameter is required")
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	raw, err := h.source.Version(ctx)
	if err != nil {
		var se *errors.StructuredError
		if !stderrors.As(err, &se) {
			se = errors.Wrap(errors.ErrCodeUnavailable, "failed to read backend version", err)
		}
		statusFetchErrors.WithLabelValues(string(se.Code)).Inc()
		slog.Warn("backend version lookup failed",
			"requestID", server.RequestIDFromContext(r.Context()),
			"error", err,
		)
		return "", se
	}
	return raw, nil
}

func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet {
		return true
	}
	w.Header().Set("Allow", http.MethodGet)
	server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{"method": r.Method})
	return false
}
