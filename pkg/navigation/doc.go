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

// Package navigation decides which navigation mode a UI should render for a
// backend, based on the version string the backend reports.
//
// Backends at or below CutoverThreshold (3.1.6) predate the current routing
// and need the legacy navigation. Newer backends get the current navigation.
// When the reported version cannot be coerced, the result is ModeUnknown and
// the caller picks its own fallback policy.
//
// # Usage
//
//	switch navigation.ResolveMode(reported) {
//	case navigation.ModeLegacy:
//	    // render legacy routes
//	case navigation.ModeCurrent:
//	    // render current routes
//	default:
//	    // unknown: caller decides (e.g. show a loading state)
//	}
//
// Release candidates and development builds are treated as their final
// release: "3.1.7rc1" and "3.1.7.dev0" both resolve like "3.1.7".
//
// All functions in this package are pure and safe for concurrent use.
package navigation
