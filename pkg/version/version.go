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

package version

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// ErrUnparseableVersion is returned by Coerce for every input it cannot
// normalize. All other parsing errors in this package wrap it.
var ErrUnparseableVersion = errors.New("unparseable version")

// Error types for coercion failures
var (
	ErrEmptyVersion      = fmt.Errorf("%w: version string is empty", ErrUnparseableVersion)
	ErrComponentCount    = fmt.Errorf("%w: version must have exactly 3 components", ErrUnparseableVersion)
	ErrNonNumeric        = fmt.Errorf("%w: version component is not numeric", ErrUnparseableVersion)
	ErrComponentOverflow = fmt.Errorf("%w: version component is out of range", ErrUnparseableVersion)
	ErrUnknownQualifier  = fmt.Errorf("%w: unsupported version qualifier", ErrUnparseableVersion)
)

// qualifierSuffixes are the pre-release qualifiers Coerce knows how to drop.
// Only one qualifier is removed per input.
var qualifierSuffixes = []*regexp.Regexp{
	regexp.MustCompile(`rc[0-9]+$`),    // 3.1.7rc1
	regexp.MustCompile(`\.dev[0-9]+$`), // 3.1.7.dev0
}

// Version is a release version made of Major, Minor and Patch.
// It never carries pre-release or build qualifiers.
type Version struct {
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor" yaml:"minor"`
	Patch int `json:"patch" yaml:"patch"`
}

// NewVersion creates a new Version with the specified major, minor, and patch values.
func NewVersion(major, minor, patch int) Version {
	return Version{
		Major: major,
		Minor: minor,
		Patch: patch,
	}
}

// String returns the "Major.Minor.Patch" form of the version.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Semver returns the canonical semver form of the version ("vMajor.Minor.Patch").
func (v Version) Semver() string {
	return semver.Canonical("v" + v.String())
}

// IsValid returns true if all components are non-negative.
func (v Version) IsValid() bool {
	if v.Major < 0 || v.Minor < 0 || v.Patch < 0 {
		return false
	}
	return semver.IsValid(v.Semver())
}

// Coerce normalizes a loosely formatted version string into a Version.
//
// Accepted forms are "MAJOR.MINOR.PATCH" with an optional "v" or "V" prefix,
// optionally followed by exactly one release candidate ("3.1.7rc1") or
// development ("3.1.7.dev0") qualifier. The qualifier is discarded, so a
// release candidate and its final release coerce to the same Version. This
// loss is intentional: callers compare releases, not pre-releases.
//
// Any other input, including the empty string, returns an error wrapping
// ErrUnparseableVersion. The returned Version must not be used in that case.
func Coerce(s string) (Version, error) {
	if s == "" {
		return Version{}, ErrEmptyVersion
	}

	// Strip 'v' prefix if present
	if s[0] == 'v' || s[0] == 'V' {
		s = s[1:]
	}
	s = stripQualifier(s)

	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("%w: %q", ErrComponentCount, s)
	}

	nums := make([]int, 0, len(parts))
	for _, part := range parts {
		num, err := parseComponent(part)
		if err != nil {
			return Version{}, err
		}
		nums = append(nums, num)
	}

	return NewVersion(nums[0], nums[1], nums[2]), nil
}

// MustCoerce coerces a version string and panics if coercion fails.
// Only use this for hardcoded strings or in tests.
func MustCoerce(s string) Version {
	v, err := Coerce(s)
	if err != nil {
		panic(fmt.Sprintf("MustCoerce: %v", err))
	}
	return v
}

func stripQualifier(s string) string {
	for _, re := range qualifierSuffixes {
		if loc := re.FindStringIndex(s); loc != nil {
			return s[:loc[0]]
		}
	}
	return s
}

func parseComponent(part string) (int, error) {
	if part == "" {
		return 0, fmt.Errorf("%w: empty component", ErrNonNumeric)
	}
	for _, ch := range part {
		if ch < '0' || ch > '9' {
			if isLetter(ch) {
				return 0, fmt.Errorf("%w: %q", ErrUnknownQualifier, part)
			}
			return 0, fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}
	}
	num, err := strconv.Atoi(part)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrComponentOverflow, part)
	}
	return num, nil
}

func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// Compare returns an integer comparing two versions:
// -1 if v < other, 0 if v == other, 1 if v > other.
// Ordering is lexicographic on (Major, Minor, Patch).
func (v Version) Compare(other Version) int {
	return semver.Compare(v.Semver(), other.Semver())
}

// Equals returns true if all components match.
func (v Version) Equals(other Version) bool {
	return v == other
}

// EqualsOrNewer returns true if v is equal to or newer than other.
func (v Version) EqualsOrNewer(other Version) bool {
	return v.Compare(other) >= 0
}

// IsNewer returns true if v is strictly newer than other.
func (v Version) IsNewer(other Version) bool {
	return v.Compare(other) > 0
}
