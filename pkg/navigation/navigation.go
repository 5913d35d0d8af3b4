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

package navigation

import (
	"github.com/edgeworker/navgate/pkg/version"
)

var cutoverThreshold = version.NewVersion(3, 1, 6)

// CutoverThreshold returns the last backend version that uses legacy navigation.
func CutoverThreshold() version.Version {
	return cutoverThreshold
}

// Resolution is the outcome of resolving a raw backend version.
type Resolution struct {
	// RawVersion is the string as reported by the backend.
	RawVersion string `json:"rawVersion" yaml:"rawVersion"`

	// NormalizedVersion is empty when the raw version could not be coerced.
	NormalizedVersion string `json:"normalizedVersion,omitempty" yaml:"normalizedVersion,omitempty"`

	Mode      Mode   `json:"mode" yaml:"mode"`
	Threshold string `json:"threshold" yaml:"threshold"`
}

// IsLegacy reports whether v is at or below the cutover threshold.
// v must come from a successful version.Coerce.
func IsLegacy(v version.Version) bool {
	return v.Compare(cutoverThreshold) <= 0
}

// ResolveMode returns the navigation mode for a raw backend version.
// It is defined for every input: strings that cannot be coerced, including
// the empty string, yield ModeUnknown.
func ResolveMode(rawVersion string) Mode {
	return Resolve(rawVersion).Mode
}

// Resolve is like ResolveMode but also returns the normalized version.
func Resolve(rawVersion string) Resolution {
	res := Resolution{
		RawVersion: rawVersion,
		Mode:       ModeUnknown,
		Threshold:  cutoverThreshold.String(),
	}

	v, err := version.Coerce(rawVersion)
	if err != nil {
		return res
	}

	res.NormalizedVersion = v.String()
	if IsLegacy(v) {
		res.Mode = ModeLegacy
	} else {
		res.Mode = ModeCurrent
	}
	return res
}
