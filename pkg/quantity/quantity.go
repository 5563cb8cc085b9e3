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
	"math"
	"strconv"
	"strings"

	"github.com/NVIDIA/deploykit/pkg/errors"
)

// Kind names the resource a quantity belongs to.
type Kind string

const (
	KindCPU    Kind = "cpu"
	KindMemory Kind = "memory"
)

const milliSuffix = "m"

// binarySuffixes maps memory suffixes to their byte multiplier.
// Ordered so longer suffixes never shadow shorter ones.
var binarySuffixes = []struct {
	suffix     string
	multiplier float64
}{
	{"Ki", 1 << 10},
	{"Mi", 1 << 20},
	{"Gi", 1 << 30},
	{"Ti", 1 << 40},
	{"Pi", 1 << 50},
	{"Ei", 1 << 60},
}

// ParseCPU converts a CPU amount to cores. A trailing "m" denotes milli-cores.
func ParseCPU(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if strings.HasSuffix(s, milliSuffix) {
		v, err := parseAmount(raw, strings.TrimSuffix(s, milliSuffix), KindCPU)
		if err != nil {
			return 0, err
		}
		return v / 1000, nil
	}
	return parseAmount(raw, s, KindCPU)
}

// ParseMemory converts a memory amount to bytes. Binary suffixes Ki through
// Ei scale by powers of 1024; no suffix means bytes.
func ParseMemory(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	for _, bs := range binarySuffixes {
		if strings.HasSuffix(s, bs.suffix) {
			v, err := parseAmount(raw, strings.TrimSuffix(s, bs.suffix), KindMemory)
			if err != nil {
				return 0, err
			}
			return v * bs.multiplier, nil
		}
	}
	return parseAmount(raw, s, KindMemory)
}

// Parse dispatches to ParseCPU or ParseMemory by kind.
func Parse(kind Kind, raw string) (float64, error) {
	switch kind {
	case KindCPU:
		return ParseCPU(raw)
	case KindMemory:
		return ParseMemory(raw)
	default:
		return 0, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"unknown resource kind", map[string]any{"kind": string(kind)})
	}
}

// parseAmount parses the numeric part left after the unit is removed.
// Whitespace between number and unit is allowed ("500 m").
func parseAmount(raw, prefix string, kind Kind) (float64, error) {
	ctx := map[string]any{"kind": string(kind), "value": raw}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return 0, errors.NewWithContext(errors.ErrCodeInvalidQuantity,
			"missing numeric amount", ctx)
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0, errors.WrapWithContext(errors.ErrCodeInvalidQuantity,
			"non-numeric amount", err, ctx)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.NewWithContext(errors.ErrCodeInvalidQuantity,
			"amount is not finite", ctx)
	}
	if v < 0 {
		return 0, errors.NewWithContext(errors.ErrCodeInvalidQuantity,
			"amount is negative", ctx)
	}
	return v, nil
}
