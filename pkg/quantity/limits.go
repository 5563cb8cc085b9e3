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

package quantity

import (
	"fmt"

	"github.com/NVIDIA/deploykit/pkg/errors"
)

// Limits holds request/limit pairs for CPU and memory. An empty string
// means the slot is unconstrained.
type Limits struct {
	CPURequest    string `json:"cpuRequest,omitempty" yaml:"cpuRequest,omitempty"`
	CPULimit      string `json:"cpuLimit,omitempty" yaml:"cpuLimit,omitempty"`
	MemoryRequest string `json:"memoryRequest,omitempty" yaml:"memoryRequest,omitempty"`
	MemoryLimit   string `json:"memoryLimit,omitempty" yaml:"memoryLimit,omitempty"`
}

// Validate checks that every present amount parses and that no request
// exceeds its limit.
func (l Limits) Validate() error {
	if err := validatePair(KindCPU, l.CPURequest, l.CPULimit); err != nil {
		return err
	}
	return validatePair(KindMemory, l.MemoryRequest, l.MemoryLimit)
}

// ValidateResourceLimits is the positional form of Limits.Validate.
func ValidateResourceLimits(cpuRequest, cpuLimit, memRequest, memLimit string) error {
	return Limits{
		CPURequest:    cpuRequest,
		CPULimit:      cpuLimit,
		MemoryRequest: memRequest,
		MemoryLimit:   memLimit,
	}.Validate()
}

func validatePair(kind Kind, request, limit string) error {
	req, hasReq, err := parseOptional(kind, "request", request)
	if err != nil {
		return err
	}
	lim, hasLim, err := parseOptional(kind, "limit", limit)
	if err != nil {
		return err
	}
	if !hasReq || !hasLim {
		return nil
	}
	if req > lim {
		return errors.NewWithContext(errors.ErrCodeInvalidResourceSpec,
			fmt.Sprintf("%s request %q exceeds limit %q", kind, request, limit),
			map[string]any{"kind": string(kind), "request": request, "limit": limit})
	}
	return nil
}

func parseOptional(kind Kind, slot, raw string) (float64, bool, error) {
	if raw == "" {
		return 0, false, nil
	}
	v, err := Parse(kind, raw)
	if err != nil {
		return 0, false, errors.WrapWithContext(errors.ErrCodeInvalidResourceSpec,
			fmt.Sprintf("invalid %s %s", kind, slot), err,
			map[string]any{"kind": string(kind), "slot": slot, "value": raw})
	}
	return v, true, nil
}
