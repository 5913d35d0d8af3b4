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

// Package version coerces loosely formatted release strings into strict
// three-component versions and orders them.
//
// # Overview
//
// Backends report versions in several dialects. Coerce accepts:
//
//   - "3.1.7" and "v3.1.7" (the "v" or "V" prefix is optional)
//   - "3.1.7rc1" (release candidate, no separator before "rc")
//   - "3.1.7.dev0" (development build)
//
// Qualifiers are dropped, so all three of "3.1.7rc1", "3.1.7.dev0" and
// "3.1.7" coerce to the same Version. Anything else fails.
//
// # Usage
//
//	v, err := version.Coerce("3.1.7rc1")
//	if err != nil {
//	    // errors.Is(err, version.ErrUnparseableVersion) is always true here
//	}
//	fmt.Println(v.String()) // Output: 3.1.7
//
// Compare versions:
//
//	cutover := version.NewVersion(3, 1, 6)
//	if v.IsNewer(cutover) {
//	    fmt.Println("past the cutover")
//	}
//
// # Semantic Versioning Compatibility
//
// Supported:
//   - Major.Minor.Patch numeric components
//   - Optional "v" prefix
//   - "rcN" and ".devN" qualifiers (discarded)
//
// Not Supported:
//   - Pre-release precedence ("1.2.3-alpha" is unparseable)
//   - Build metadata ("1.2.3+build.123" is unparseable)
//   - Version ranges or constraints
//
// # Error Handling
//
// Every Coerce failure wraps ErrUnparseableVersion. The more specific
// ErrEmptyVersion, ErrComponentCount, ErrNonNumeric, ErrComponentOverflow
// and ErrUnknownQualifier describe why.
//
// For constant initialization, use MustCoerce which panics on error:
//
//	var Cutover = version.MustCoerce("3.1.6")
package version
