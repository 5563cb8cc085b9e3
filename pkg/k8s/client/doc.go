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

// Package client builds Kubernetes clients for deploykit commands.
//
// Clients are cached per kubeconfig path behind a mutex, so repeated
// commands in one process share connections:
//
//	clientset, _, err := client.Get(kubeconfig)
//	if err != nil {
//	    return fmt.Errorf("failed to get kubernetes client: %w", err)
//	}
//
// Build creates an uncached client. With an empty path the configuration is
// discovered from KUBECONFIG, then ~/.kube/config, then the in-cluster
// service account. Request QPS, burst and timeout come from pkg/defaults.
package client
