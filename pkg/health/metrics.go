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

package health

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	probeAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deploykit_health_probe_attempts_total",
			Help: "Total number of health probes by outcome",
		},
		[]string{"outcome"}, // success, status, network or empty
	)

	pollsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deploykit_health_polls_total",
			Help: "Total number of health polls by terminal state",
		},
		[]string{"state"},
	)

	pollDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "deploykit_health_poll_duration_seconds",
			Help:    "Duration of health polls in seconds",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
		},
	)
)
