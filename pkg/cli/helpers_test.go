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

package cli

import (
	"context"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/edgeworker/navgate/pkg/navigation"
	"github.com/edgeworker/navgate/pkg/serializer"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		wantFormat serializer.Format
		wantErr    bool
	}{
		{
			name:       "valid yaml format",
			format:     "yaml",
			wantFormat: serializer.FormatYAML,
		},
		{
			name:       "valid json format",
			format:     "json",
			wantFormat: serializer.FormatJSON,
		},
		{
			name:       "valid table format",
			format:     "table",
			wantFormat: serializer.FormatTable,
		},
		{
			name:       "upper case format",
			format:     "JSON",
			wantFormat: serializer.FormatJSON,
		},
		{
			name:    "invalid format xml",
			format:  "xml",
			wantErr: true,
		},
		{
			name:    "empty format",
			format:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cli.Command{
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  flagFormat,
						Value: tt.format,
					},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					got, err := parseOutputFormat(c)
					if (err != nil) != tt.wantErr {
						t.Errorf("parseOutputFormat() error = %v, wantErr %v", err, tt.wantErr)
						return nil
					}
					if !tt.wantErr && got != tt.wantFormat {
						t.Errorf("parseOutputFormat() = %v, want %v", got, tt.wantFormat)
					}
					return nil
				},
			}

			if err := cmd.Run(context.Background(), []string{"test"}); err != nil {
				t.Fatalf("failed to run command: %v", err)
			}
		})
	}
}

func TestRawVersion_FromArgument(t *testing.T) {
	cmd := &cli.Command{
		Flags: []cli.Flag{urlFlag(), timeoutFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			got, err := rawVersion(ctx, c)
			if err != nil {
				t.Errorf("rawVersion() unexpected error: %v", err)
				return nil
			}
			if got != "3.1.7rc1" {
				t.Errorf("rawVersion() = %q, want %q", got, "3.1.7rc1")
			}
			return nil
		},
	}

	if err := cmd.Run(context.Background(), []string{"test", "3.1.7rc1"}); err != nil {
		t.Fatalf("failed to run command: %v", err)
	}
}

func TestRawVersion_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no argument and no url", args: []string{"test"}},
		{name: "too many arguments", args: []string{"test", "3.1.7", "3.1.6"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(envStatusURL, "")
			cmd := &cli.Command{
				Flags: []cli.Flag{urlFlag(), timeoutFlag()},
				Action: func(ctx context.Context, c *cli.Command) error {
					_, err := rawVersion(ctx, c)
					return err
				},
			}
			if err := cmd.Run(context.Background(), tt.args); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestModeLabel(t *testing.T) {
	tests := []struct {
		mode navigation.Mode
		want string
	}{
		{navigation.ModeLegacy, "Legacy"},
		{navigation.ModeCurrent, "Current"},
		{navigation.ModeUnknown, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := modeLabel(tt.mode); got != tt.want {
				t.Errorf("modeLabel(%v) = %q, want %q", tt.mode, got, tt.want)
			}
		})
	}
}
