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

// Package server provides the HTTP server that hosts the navgate API.
//
// The server is stateless apart from its readiness flag. Route handlers are
// supplied by the caller and wrapped in a fixed middleware chain:
//
//   - Prometheus RED metrics (request count, latency, in-flight)
//   - API version negotiation via the Accept header
//   - Request ID tracking (X-Request-Id, UUID)
//   - Panic recovery
//   - Token bucket rate limiting (golang.org/x/time/rate)
//   - Debug request logging
//
// # Usage
//
//	s := server.New(
//	    server.WithName("navgated"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/navigation": handleNavigation,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run blocks until SIGINT or SIGTERM is received or ctx is canceled, then
// shuts down gracefully within the configured shutdown timeout.
//
// # System Endpoints
//
// GET /health - liveness, always 200 while the process serves requests.
//
// GET /ready - readiness, 200 once Run has started and 503 during shutdown.
//
// GET /metrics - Prometheus exposition.
//
// GET / - server name, version and the list of registered routes.
//
// # Configuration
//
// Defaults come from pkg/defaults and can be overridden with the
// environment:
//
//	PORT                      listen port (default 8080)
//	SHUTDOWN_TIMEOUT_SECONDS  graceful shutdown timeout (default 30)
//
// # Error Handling
//
// All errors return a consistent JSON structure:
//
//	{
//	  "code": "INVALID_REQUEST",
//	  "message": "version query parameter is required",
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2026-01-12T12:00:00Z",
//	  "retryable": false
//	}
package server
