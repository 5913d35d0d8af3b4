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
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/edgeworker/navgate/pkg/header"
	"github.com/edgeworker/navgate/pkg/navigation"
	"github.com/edgeworker/navgate/pkg/serializer"
	"github.com/edgeworker/navgate/pkg/status"
)

// parseOutputFormat validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	return serializer.ParseFormat(cmd.String(flagFormat))
}

// rawVersion returns the VERSION argument, or reads it from the backend
// named by --url when the argument is omitted.
func rawVersion(ctx context.Context, cmd *cli.Command) (string, error) {
	if cmd.Args().Present() {
		if cmd.Args().Len() > 1 {
			return "", fmt.Errorf("expected at most one VERSION argument, got %d", cmd.Args().Len())
		}
		return cmd.Args().First(), nil
	}

	baseURL := strings.TrimSpace(cmd.String(flagURL))
	if baseURL == "" {
		return "", fmt.Errorf("a VERSION argument or --%s is required", flagURL)
	}

	client := status.NewClient(baseURL, status.WithTimeout(cmd.Duration(flagTimeout)))
	raw, err := client.Version(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read version from %s: %w", client.BaseURL(), err)
	}
	slog.Debug("version read from backend", "url", client.BaseURL(), "version", raw)
	return raw, nil
}

// writeResult serializes v to --output in the --format format.
func writeResult(ctx context.Context, cmd *cli.Command, format serializer.Format, v any) error {
	ser := serializer.NewFileWriterOrStdout(format, cmd.String(flagOutput))
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	return ser.Serialize(ctx, v)
}

// modeLabel is the human readable form of a mode used in table output.
func modeLabel(m navigation.Mode) string {
	return cases.Title(language.English).String(m.String())
}

// newHeader returns the document header for a CLI result of the given kind.
func newHeader(kind header.Kind) header.Header {
	return header.New(header.WithKind(kind), header.WithToolVersion(version))
}
