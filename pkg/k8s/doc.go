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

// Package k8s holds the Kubernetes integration shared by deploykit's
// cluster operations.
//
// # Sub-packages
//
//   - client: cached clientset construction with kubeconfig discovery
//   - cluster: best-effort cloud provider classification from node metadata
//   - pvc: idempotent PersistentVolumeClaim provisioning
//   - deleter: delete-by-name that treats "not found" as success
//
// # Lookup results
//
// API calls whose "not found" answer is an expected branch are folded into
// a Result instead of being classified by the caller:
//
//	pvc, err := cs.CoreV1().PersistentVolumeClaims(ns).Get(ctx, name, metav1.GetOptions{})
//	res := k8s.Lookup(pvc, err)
//	switch res.Status {
//	case k8s.StatusFound:
//	    // use res.Object
//	case k8s.StatusNotFound:
//	    // create it
//	case k8s.StatusFailed:
//	    return res.Err
//	}
package k8s
