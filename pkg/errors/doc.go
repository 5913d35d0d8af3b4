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

// Package errors provides structured errors shared by the outer layers of
// navgate (status client, HTTP server and CLI).
//
// The core packages (version, navigation, compat) do not use it: their only
// failure is version.ErrUnparseableVersion, which the gate turns into an
// unknown navigation mode rather than an error.
//
// Each StructuredError carries a machine-readable Code, a message, an
// optional cause and optional context:
//
//	err := errors.WrapWithContext(errors.ErrCodeUnavailable,
//	    "failed to fetch backend version", cause,
//	    map[string]any{"url": url},
//	)
//
// HTTPStatus maps a code to the status the API server responds with, and
// Retryable reports whether a client may retry the request unchanged.
package errors
