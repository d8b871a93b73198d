// Copyright (c) 2025, The crumb Authors. All rights reserved.
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

package recipe

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recipeBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "crumb_recipe_build_duration_seconds",
			Help:    "Duration of recipe calculation in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	recipeBuildFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crumb_recipe_build_failures_total",
			Help: "Total number of failed recipe calculations by error code",
		},
		[]string{"code"},
	)

	recipePreferments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crumb_recipe_preferments_total",
			Help: "Total number of preferments built by kind",
		},
		[]string{"kind"},
	)
)
