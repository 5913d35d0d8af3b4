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

	"github.com/urfave/cli/v3"

	"github.com/edgeworker/navgate/pkg/compat"
	"github.com/edgeworker/navgate/pkg/header"
)

// gatesDocument is the output of the compat command.
type gatesDocument struct {
	header.Header `json:",inline" yaml:",inline"`
	compat.Gates  `json:",inline" yaml:",inline"`
}

func compatCmd() *cli.Command {
	return &cli.Command{
		Name:      "compat",
		Usage:     "Evaluate release feature gates for a backend version",
		ArgsUsage: "[VERSION]",
		Description: `Report which release feature gates (3.0, 3.1 and 3.2) a backend version passes.

Pre-release qualifiers are ignored, so 3.1.0rc1 passes the 3.1 gate.
When VERSION is omitted the version is read from the backend given by --url.`,
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

			gates, err := compat.Evaluate(raw)
			if err != nil {
				return err
			}

			return writeResult(ctx, cmd, outFormat, gatesDocument{
				Header: newHeader(header.KindFeatureGates),
				Gates:  gates,
			})
		},
	}
}
