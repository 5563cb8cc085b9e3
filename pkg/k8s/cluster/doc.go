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

// Package cluster classifies the cloud provider hosting a Kubernetes cluster.
//
// Detection inspects the first node returned by the API: its
// spec.providerID prefix first, then well-known provider labels.
// Classification is best-effort and never returns an error; listing
// failures, empty clusters and unrecognized nodes all yield ProviderLocal.
//
//	provider := cluster.NewDetector(cluster.FromClientset(cs)).ClusterType(ctx)
//	if provider == cluster.ProviderAWS {
//	    // provider-specific storage class, load balancer annotations, ...
//	}
package cluster
