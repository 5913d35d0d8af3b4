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

// Package serializer writes navgate results in JSON, YAML or table form and
// reads small documents over HTTP.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, indented
//   - Used by the API server and as the CLI default
//
// YAML:
//   - Human-readable, gopkg.in/yaml.v3
//
// Table:
//   - Flattened FIELD/VALUE rows for terminal viewing
//   - Values implementing fmt.Stringer print their string form
//
// # Usage
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, resolution); err != nil {
//	    return err
//	}
//
// For HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, data)
//
// For reading a remote document:
//
//	r := serializer.NewHttpReader(serializer.WithTotalTimeout(5 * time.Second))
//	body, err := r.ReadWithContext(ctx, url)
package serializer
