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

// Package cli implements the navgate command-line interface.
//
// # Commands
//
// resolve - Resolve the navigation mode for a backend version:
//
//	navgate resolve 3.1.7rc1
//	navgate resolve --url https://backend.example.com
//
// Prints the raw version, its normalized form, the cutover threshold and
// the resulting mode (legacy, current or unknown). An unknown mode is a
// normal result and does not fail the command.
//
// coerce - Normalize a version string:
//
//	navgate coerce v3.1.7.dev0
//
// Fails with exit code 1 when the string cannot be normalized.
//
// compat - Evaluate release feature gates:
//
//	navgate compat 3.2.0
//
// # Flags
//
//	--url          Backend base URL used when no version argument is given (env: NAVGATE_STATUS_URL)
//	--timeout      Timeout for the backend version lookup
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml, env: NAVGATE_FORMAT)
//	--log-level    Log level: debug, info, warn, error (env: LOG_LEVEL)
//
// Logs are written to stderr as JSON so stdout carries only the result.
package cli
