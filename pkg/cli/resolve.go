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
	"github.com/edgeworker/navgate/pkg/navigation"
	"github.com/edgeworker/navgate/pkg/serializer"
)

// resolutionDocument is the JSON and YAML view of a navigation.Resolution.
type resolutionDocument struct {
	header.Header         `json:",inline" yaml:",inline"`
	navigation.Resolution `json:",inline" yaml:",inline"`
}

// resolutionRow is the table view of a navigation.Resolution.
type resolutionRow struct {
	RawVersion        string
	NormalizedVersion string
	Threshold         string
	Mode              string
}

func resolveCmd() *cli.Command {
	return &cli.Command{
		Name:      "resolve",
		Usage:     "Resolve the navigation mode for a backend version",
		ArgsUsage: "[VERSION]",
		Description: fmt.Sprintf(`Resolve the navigation mode a UI should use for a backend version.

Versions at or below %s use the legacy navigation, newer versions use the
current one, and versions that cannot be normalized resolve to unknown.
Release candidates (3.1.7rc1) and development builds (3.1.7.dev0) count
as their final release.

When VERSION is omitted the version is read from the backend given by --url.`,
			navigation.CutoverThreshold()),
		Flags: []cli.Flag{
			urlFlag(),
			timeoutFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			raw, err := rawVersion(ctx, cmd)
			if err != nil {
				return err
			}

			res := navigation.Resolve(raw)

			if outFormat == serializer.FormatTable {
				return writeResult(ctx, cmd, outFormat, resolutionRow{
					RawVersion:        res.RawVersion,
					NormalizedVersion: res.NormalizedVersion,
					Threshold:         res.Threshold,
					Mode:              modeLabel(res.Mode),
				})
			}
			return writeResult(ctx, cmd, outFormat, resolutionDocument{
				Header:     newHeader(header.KindNavigationResolution),
				Resolution: res,
			})
		},
	}
}
