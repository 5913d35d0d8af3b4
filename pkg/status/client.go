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

package status

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/edgeworker/navgate/pkg/defaults"
	"github.com/edgeworker/navgate/pkg/errors"
	"github.com/edgeworker/navgate/pkg/serializer"
)

// VersionPath is the backend endpoint that reports the running version.
const VersionPath = "/api/v2/version"

// Info is the payload served on VersionPath.
type Info struct {
	Version    string `json:"version" yaml:"version"`
	GitVersion string `json:"git_version,omitempty" yaml:"gitVersion,omitempty"`
}

// Option configures a Client.
type Option func(*Client)

// Client reads version information from a backend status endpoint.
type Client struct {
	baseURL string
	timeout time.Duration
	reader  *serializer.HttpReader
}

// WithTimeout bounds a single Version call. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithReader replaces the HTTP reader used to call the backend.
func WithReader(r *serializer.HttpReader) Option {
	return func(c *Client) {
		if r != nil {
			c.reader = r
		}
	}
}

// NewClient returns a Client for the backend rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		timeout: defaults.StatusFetchTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.reader == nil {
		c.reader = serializer.NewHttpReader(
			serializer.WithAccept("application/json"),
			serializer.WithTotalTimeout(c.timeout),
		)
	}
	return c
}

// BaseURL returns the normalized backend URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Version returns the raw version string reported by the backend.
// An empty string is returned as-is.
func (c *Client) Version(ctx context.Context) (string, error) {
	info, err := c.Info(ctx)
	if err != nil {
		return "", err
	}
	return info.Version, nil
}

// Info fetches and decodes the full status payload.
func (c *Client) Info(ctx context.Context) (*Info, error) {
	endpoint, err := c.endpoint()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	slog.Debug("fetching backend version", "url", endpoint)

	data, err := c.reader.ReadWithContext(ctx, endpoint)
	if err != nil {
		return nil, classify(err, endpoint)
	}

	var info Info
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInternal,
			"failed to decode status response", err, map[string]any{"url": endpoint})
	}

	slog.Debug("backend version fetched", "url", endpoint, "version", info.Version)
	return &info, nil
}

func (c *Client) endpoint() (string, error) {
	if c.baseURL == "" {
		return "", errors.New(errors.ErrCodeInvalidRequest, "status URL is not configured")
	}
	u, err := url.Parse(c.baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"status URL must be absolute", map[string]any{"url": c.baseURL})
	}
	return u.JoinPath(VersionPath).String(), nil
}

func classify(err error, endpoint string) error {
	ctx := map[string]any{"url": endpoint}

	var netErr net.Error
	if stderrors.Is(err, context.DeadlineExceeded) || (stderrors.As(err, &netErr) && netErr.Timeout()) {
		return errors.WrapWithContext(errors.ErrCodeTimeout, "status request timed out", err, ctx)
	}

	var statusErr *serializer.StatusError
	if stderrors.As(err, &statusErr) {
		ctx["status"] = statusErr.StatusCode
		return errors.WrapWithContext(errors.ErrCodeUnavailable,
			fmt.Sprintf("status endpoint returned %d", statusErr.StatusCode), err, ctx)
	}

	return errors.WrapWithContext(errors.ErrCodeUnavailable, "status endpoint unreachable", err, ctx)
}
