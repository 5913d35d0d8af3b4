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

// Package header provides the document header written in front of every
// navgate CLI result.
//
// The header follows Kubernetes-style conventions so results saved to
// files can be told apart and versioned:
//
//	kind: NavigationResolution
//	apiVersion: navgate.dev/v1alpha1
//	metadata:
//	  timestamp: "2026-01-12T12:00:00Z"
//	  version: 1.0.0
//
// Embed Header inline in result types:
//
//	type document struct {
//	    header.Header `json:",inline" yaml:",inline"`
//	    Result        any `json:"result" yaml:"result"`
//	}
package header
