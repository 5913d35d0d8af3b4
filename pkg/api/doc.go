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

// Package api wires the navigation gate into the HTTP server run by navgated.
//
// # Usage
//
//	import (
//	    "log"
//	    "github.com/edgeworker/navgate/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Architecture
//
// The API layer is responsible for:
//   - Configuring structured logging with application name and version
//   - Setting up route handlers for the gate and feature checks
//   - Delegating server lifecycle management to pkg/server
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - GET /v1/navigation - Resolve the navigation mode for a backend version
//   - GET /v1/compat     - Evaluate release feature gates for a backend version
//
// System Endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Query Parameters
//
// Both endpoints accept a single version parameter holding the raw string
// reported by the backend:
//
//	curl "http://localhost:8080/v1/navigation?version=3.1.7rc1"
//
// When the parameter is omitted and NAVGATE_STATUS_URL is set, the version
// is read from that backend's /api/v2/version endpoint instead. A present
// but empty parameter is a valid input and resolves to the unknown mode.
//
// # Configuration
//
// Environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: debug, info, warn or error (default: info)
//   - SHUTDOWN_TIMEOUT_SECONDS: graceful shutdown timeout (default: 30)
//   - NAVGATE_STATUS_URL: backend base URL used when no version is given
package api
