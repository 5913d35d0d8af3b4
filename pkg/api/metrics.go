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

package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	navigationDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "navgate_navigation_decisions_total",
			Help: "Total number of navigation mode decisions by resolved mode",
		},
		[]string{"mode"},
	)

	statusFetchErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "navgate_status_fetch_errors_total",
			Help: "Total number of failed backend version lookups by error code",
		},
		[]string{"code"},
	)
)
