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

// Package cli implements the deployctl command-line interface.
//
// # Overview
//
// deployctl exposes the deploykit primitives that sit around an application
// rollout: validating resource specs before templating, resolving the
// environment an app ships with, packaging its source, preparing and
// cleaning up cluster objects, and confirming the deployment answers on its
// NodePort.
//
// # Commands
//
//	deployctl validate-resources --cpu-request 500m --cpu-limit 1
//	deployctl env --app-dir ./todo-app [--redact]
//	deployctl package --source ./todo-app --dest todo.tar.gz [--checksum] [--push oci://...]
//	deployctl cluster-type
//	deployctl ensure-pvc --namespace apps --name todo-data [--size 5Gi] [--storage-class gp3]
//	deployctl delete --kind deployment --name todo-app --namespace apps
//	deployctl wait --node-port 30080 [--path /healthz]...
//	deployctl frontend-check --url http://localhost:30080/
//
// # Global Flags
//
//	--output, -o      Output file path (default: stdout)
//	--format, -t      Output format: yaml, json, table (default: yaml)
//	--kubeconfig, -k  Path to kubeconfig (default: KUBECONFIG, ~/.kube/config, in-cluster)
//	--log-level       debug, info, warn, error (default: info)
//
// # Environment Variables
//
//	LOG_LEVEL         Logging verbosity
//	KUBECONFIG        Kubeconfig path
//	DEPLOYCTL_FORMAT  Output format
//	DEPLOYCTL_OUTPUT  Output file
//
// # Exit Codes
//
//	0  Success
//	1  Any failure (invalid input, cluster error, unhealthy deployment)
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/deploykit/pkg/cli.version=1.0.0'" ./cmd/deployctl
package cli
