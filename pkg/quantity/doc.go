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

// Package quantity parses Kubernetes-style resource amounts and validates
// request/limit pairs.
//
// CPU amounts are returned in fractional cores and memory amounts in bytes:
//
//	cores, err := quantity.ParseCPU("500m")   // 0.5
//	bytes, err := quantity.ParseMemory("1Gi") // 1073741824
//
// Malformed input always fails with an INVALID_QUANTITY error; nothing is
// coerced to zero. ValidateResourceLimits treats an empty string as an
// absent slot and reports request > limit as INVALID_RESOURCE_SPEC.
package quantity
