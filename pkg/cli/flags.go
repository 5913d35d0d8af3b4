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
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/edgeworker/navgate/pkg/defaults"
	"github.com/edgeworker/navgate/pkg/serializer"
)

const (
	flagOutput   = "output"
	flagFormat   = "format"
	flagURL      = "url"
	flagTimeout  = "timeout"
	flagLogLevel = "log-level"

	envFormat    = "NAVGATE_FORMAT"
	envStatusURL = "NAVGATE_STATUS_URL"
	envLogLevel  = "LOG_LEVEL"
)

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    flagOutput,
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    flagFormat,
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("Output format (supported values: %v)", serializer.SupportedFormats()),
		Sources: cli.EnvVars(envFormat),
	}
}

func urlFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    flagURL,
		Usage:   "Backend base URL to read the version from when no VERSION argument is given",
		Sources: cli.EnvVars(envStatusURL),
	}
}

func timeoutFlag() cli.Flag {
	return &cli.DurationFlag{
		Name:  flagTimeout,
		Value: defaults.CLIStatusTimeout,
		Usage: "Timeout for reading the version from the backend",
	}
}

func logLevelFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    flagLogLevel,
		Value:   "info",
		Usage:   "Log level (debug, info, warn, error)",
		Sources: cli.EnvVars(envLogLevel),
	}
}
