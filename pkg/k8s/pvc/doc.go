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

// Package pvc idempotently provisions PersistentVolumeClaims.
//
// EnsureExists reads the claim by name and creates it only when the API
// reports it as not found:
//
//	err := pvc.EnsureExists(ctx, pvc.FromClientset(cs), pvc.Spec{
//	    Namespace:    "apps",
//	    Name:         "todo-data",
//	    Size:         "10Gi",
//	    StorageClass: "fast",
//	})
//
// An existing claim is never updated. Any other read failure is returned as
// a PROVISIONING error without attempting a create.
//
// The read-then-create sequence is not atomic. When two callers race, the
// loser's create fails with AlreadyExists; the API error stays in the chain
// so callers can accept it:
//
//	if err != nil && !apierrors.IsAlreadyExists(err) {
//	    return err
//	}
package pvc
