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

// Package status fetches the version string a backend reports on its
// status endpoint.
//
// The client only transports the string. Interpreting it is the job of
// the navigation package, which maps anything unusable, including an
// empty version, to the unknown mode:
//
//	raw, err := status.NewClient(baseURL).Version(ctx)
//	if err != nil {
//		return err
//	}
//	mode := navigation.ResolveMode(raw)
package status
