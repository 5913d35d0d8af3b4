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
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/edgeworker/navgate/pkg/header"
	navversion "github.com/edgeworker/navgate/pkg/version"
)

// coerceResult is the output of the coerce command.
type coerceResult struct {
	header.Header `json:",inline" yaml:",inline"`

	Input   string `json:"input" yaml:"input"`
	Version string `json:"version" yaml:"version"`
	Semver  string `json:"semver" yaml:"semver"`
}

func coerceCmd() *cli.Command {
	return &cli.Command{
		Name:      "coerce",
		Usage:     "Normalize a version string to major.minor.patch",
		ArgsUsage: "VERSION",
		Description: `Normalize a loosely formatted version string.

Accepted forms are MAJOR.MINOR.PATCH with an optional v prefix and at most
one rcN or .devN qualifier, which is dropped. Anything else fails.`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one VERSION argument, got %d", cmd.Args().Len())
			}
			raw := cmd.Args().First()

			v, err := navversion.Coerce(raw)
			if err != nil {
				return fmt.Errorf("cannot coerce %q: %w", raw, err)
			}

			return writeResult(ctx, cmd, outFormat, coerceResult{
				Header:  newHeader(header.KindVersionCoercion),
				Input:   raw,
				Version: v.String(),
				Semver:  v.Semver(),
			})
		},
	}
}
