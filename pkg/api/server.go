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
	"log/slog"
	"os"
	"strings"

	"github.com/edgeworker/navgate/pkg/logging"
	"github.com/edgeworker/navgate/pkg/server"
	"github.com/edgeworker/navgate/pkg/status"
)

const (
	name           = "navgated"
	versionDefault = "dev"

	// EnvStatusURL is the backend base URL used when requests omit the version.
	EnvStatusURL = "NAVGATE_STATUS_URL"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/edgeworker/navgate/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// It configures logging, sets up routes, and handles graceful shutdown.
// Returns an error if the server fails to start or encounters a fatal error.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	h := NewHandler(handlerOptionsFromEnv()...)

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(h.Routes()),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

func handlerOptionsFromEnv() []HandlerOption {
	statusURL := strings.TrimSpace(os.Getenv(EnvStatusURL))
	if statusURL == "" {
		return nil
	}
	slog.Info("backend status endpoint configured", "url", statusURL)
	return []HandlerOption{WithVersionSource(status.NewClient(statusURL))}
}
