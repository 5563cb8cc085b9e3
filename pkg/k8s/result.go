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

package k8s

import (
	apierrors "k8s.io/apimachinery/pkg/api/errors"
)

// Status tags the outcome of a cluster lookup.
type Status int

const (
	StatusFound Status = iota
	StatusNotFound
	StatusFailed
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNotFound:
		return "not-found"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is a Found | NotFound | Failed variant. Object is set only when
// Found, Err only when Failed.
type Result[T any] struct {
	Status Status
	Object T
	Err    error
}

// Lookup classifies the (object, error) pair returned by a client-go call.
func Lookup[T any](obj T, err error) Result[T] {
	switch {
	case err == nil:
		return Result[T]{Status: StatusFound, Object: obj}
	case apierrors.IsNotFound(err):
		return Result[T]{Status: StatusNotFound}
	default:
		return Result[T]{Status: StatusFailed, Err: err}
	}
}

// Outcome classifies an error-only call such as Delete.
func Outcome(err error) Result[struct{}] {
	return Lookup(struct{}{}, err)
}
