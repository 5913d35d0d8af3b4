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
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Option customizes the server Config.
type Option func(*Config)

// WithName sets the server name reported on the root route.
func WithName(name string) Option {
	return func(c *Config) {
		if name != "" {
			c.Name = name
		}
	}
}

// WithVersion sets the server version reported on the root route.
func WithVersion(version string) Option {
	return func(c *Config) {
		if version != "" {
			c.Version = version
		}
	}
}

// WithHandler registers handlers by path. Handlers are wrapped with the
// middleware chain.
func WithHandler(handlers map[string]http.HandlerFunc) Option {
	return func(c *Config) {
		if c.Handlers == nil {
			c.Handlers = make(map[string]http.HandlerFunc, len(handlers))
		}
		for path, h := range handlers {
			c.Handlers[path] = h
		}
	}
}

// WithAddress sets the listen address. Empty means all interfaces.
func WithAddress(addr string) Option {
	return func(c *Config) {
		c.Address = addr
	}
}

// WithPort sets the listen port. Port 0 picks a free port.
func WithPort(port int) Option {
	return func(c *Config) {
		if port >= 0 && port <= 65535 {
			c.Port = port
		}
	}
}

// WithRateLimit sets the token bucket rate and burst.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *Config) {
		if limit > 0 && burst > 0 {
			c.RateLimit = limit
			c.RateLimitBurst = burst
		}
	}
}

// WithShutdownTimeout sets the graceful shutdown timeout.
func WithShutdownTimeout(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.ShutdownTimeout = d
		}
	}
}
