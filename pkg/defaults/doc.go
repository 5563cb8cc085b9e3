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

// Package defaults provides centralized configuration constants for deploykit.
//
// This package defines timeout values, health polling parameters, and file
// names used across the codebase. Centralizing these values keeps the CLI
// flags and the library defaults in agreement.
//
// # Categories
//
//   - Health polling: initial wait, interval, retries, per-probe timeout
//   - Kubernetes: client timeout and rate limits
//   - HTTP client: connection level timeouts for the prober transport
//   - Application layout: env file, manifest file and manifest key path
//
// # Usage
//
//	policy := health.Policy{
//	    InitialWait: defaults.HealthInitialWait,
//	    Interval:    defaults.HealthPollInterval,
//	    MaxRetries:  defaults.HealthMaxRetries,
//	}
package defaults
