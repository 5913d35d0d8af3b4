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
	"fmt"
	"strings"
)

// Mode is the navigation mode a UI should render.
// The zero value is ModeUnknown, so an unset Mode is never mistaken for
// legacy or current.
type Mode int

const (
	// ModeUnknown means the backend version could not be determined.
	ModeUnknown Mode = iota
	// ModeLegacy means the backend is at or below the cutover threshold.
	ModeLegacy
	// ModeCurrent means the backend is newer than the cutover threshold.
	ModeCurrent
)

var modeNames = map[Mode]string{
	ModeUnknown: "unknown",
	ModeLegacy:  "legacy",
	ModeCurrent: "current",
}

// String returns the string representation of the Mode.
func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// IsValid checks if the Mode is one of the recognized modes.
func (m Mode) IsValid() bool {
	_, ok := modeNames[m]
	return ok
}

// IsKnown reports whether the mode is Legacy or Current.
func (m Mode) IsKnown() bool {
	return m == ModeLegacy || m == ModeCurrent
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("invalid navigation mode: %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// ParseMode parses the case-insensitive text form of a Mode.
func ParseMode(s string) (Mode, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for mode, name := range modeNames {
		if name == needle {
			return mode, nil
		}
	}
	return ModeUnknown, fmt.Errorf("unknown navigation mode: %q, supported values: %v", s, SupportedModes())
}

// SupportedModes returns the text form of every Mode.
func SupportedModes() []string {
	return []string{
		ModeUnknown.String(),
		ModeLegacy.String(),
		ModeCurrent.String(),
	}
}
