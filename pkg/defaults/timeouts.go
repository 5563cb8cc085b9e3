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

package defaults

import "time"

const (
	// HealthInitialWait is the delay before the first health probe.
	HealthInitialWait = 5 * time.Second

	// HealthPollInterval is the delay between health probes.
	HealthPollInterval = 10 * time.Second

	// HealthMaxRetries is the number of probes before giving up.
	HealthMaxRetries = 30

	// HealthProbeTimeout bounds a single health probe request.
	// Should be less than HealthPollInterval so probes never overlap.
	HealthProbeTimeout = 5 * time.Second

	// HealthProbeHost is the host probed when none is given.
	HealthProbeHost = "localhost"
)

const (
	// K8sClientTimeout is the timeout for individual Kubernetes API requests.
	K8sClientTimeout = 30 * time.Second

	// K8sClientQPS is the sustained request rate to the API server.
	K8sClientQPS = 50

	// K8sClientBurst is the burst request allowance to the API server.
	K8sClientBurst = 100

	// K8sOperationTimeout bounds a single CLI level cluster operation.
	K8sOperationTimeout = 60 * time.Second
)

const (
	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 3 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 3 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second
)

const (
	// EnvFileName is the dotenv file read from the application directory.
	EnvFileName = ".env"

	// ManifestFileName is the manifest declaring process-sourced env keys.
	ManifestFileName = "jac.toml"

	// ManifestEnvKeyPath is the dotted location of the declared key list.
	ManifestEnvKeyPath = "environment.keys"

	// PVCStorageSize is the claim size used when none is given.
	PVCStorageSize = "5Gi"
)
