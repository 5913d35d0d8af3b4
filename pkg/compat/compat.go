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

// Package compat evaluates release-based feature gates for a backend version.
//
// Gates compare only the release triple (major.minor.patch). Release
// candidates and development builds count as their final release, so a
// backend reporting "3.1.0rc1" already passes the 3.1 gate.
//
//	gates, err := compat.Evaluate("3.1.7rc1")
//	if err != nil {
//	    // version could not be coerced
//	}
//	if gates.V3_1Plus {
//	    // use 3.1 APIs
//	}
package compat

import (
	"fmt"

	"github.com/edgeworker/navgate/pkg/version"
)

// Release bases for the known feature gates.
var (
	baseV3_0 = version.NewVersion(3, 0, 0)
	baseV3_1 = version.NewVersion(3, 1, 0)
	baseV3_2 = version.NewVersion(3, 2, 0)
)

// Gates is the set of feature gates derived from a backend version.
type Gates struct {
	Version  string `json:"version" yaml:"version"`
	V3_0Plus bool   `json:"v3_0Plus" yaml:"v3_0Plus"`
	V3_1Plus bool   `json:"v3_1Plus" yaml:"v3_1Plus"`
	V3_2Plus bool   `json:"v3_2Plus" yaml:"v3_2Plus"`
}

// IsAtLeast reports whether current is at or above base.
func IsAtLeast(current, base version.Version) bool {
	return current.EqualsOrNewer(base)
}

// Evaluate coerces rawVersion and computes every gate.
// Coercion errors are wrapped and still match version.ErrUnparseableVersion.
func Evaluate(rawVersion string) (Gates, error) {
	v, err := version.Coerce(rawVersion)
	if err != nil {
		return Gates{}, fmt.Errorf("failed to evaluate feature gates: %w", err)
	}
	return ForVersion(v), nil
}

// ForVersion computes every gate for an already coerced version.
func ForVersion(v version.Version) Gates {
	return Gates{
		Version:  v.String(),
		V3_0Plus: IsAtLeast(v, baseV3_0),
		V3_1Plus: IsAtLeast(v, baseV3_1),
		V3_2Plus: IsAtLeast(v, baseV3_2),
	}
}
