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

package cluster

import (
	"strings"

	corev1 "k8s.io/api/core/v1"
)

// Provider is a cluster hosting classification.
type Provider string

const (
	ProviderAWS          Provider = "aws"
	ProviderGCP          Provider = "gcp"
	ProviderAzure        Provider = "azure"
	ProviderOracle       Provider = "oracle"
	ProviderDigitalOcean Provider = "digitalocean"
	ProviderIBM          Provider = "ibm"
	ProviderHetzner      Provider = "hetzner"
	ProviderLocal        Provider = "local"
)

// String implements fmt.Stringer.
func (p Provider) String() string {
	return string(p)
}

// providerIDSchemes maps the spec.providerID scheme (before "://").
// Typical values:
//   - EKS: aws:///us-west-2a/i-0123456789abcdef0
//   - GKE: gce://my-project/us-central1-a/gke-cluster-node
//   - AKS: azure:///subscriptions/.../virtualMachines/...
//   - OKE: oci://ocid1.instance.oc1...
var providerIDSchemes = map[string]Provider{
	"aws":          ProviderAWS,
	"gce":          ProviderGCP,
	"azure":        ProviderAzure,
	"oci":          ProviderOracle,
	"digitalocean": ProviderDigitalOcean,
	"ibm":          ProviderIBM,
	"hcloud":       ProviderHetzner,
}

// providerLabels are checked in order when the providerID is inconclusive.
var providerLabels = []struct {
	key      string
	provider Provider
}{
	{"eks.amazonaws.com/nodegroup", ProviderAWS},
	{"alpha.eksctl.io/nodegroup-name", ProviderAWS},
	{"cloud.google.com/gke-nodepool", ProviderGCP},
	{"kubernetes.azure.com/cluster", ProviderAzure},
	{"kubernetes.azure.com/agentpool", ProviderAzure},
	{"oci.oraclecloud.com/fault-domain", ProviderOracle},
	{"doks.digitalocean.com/node-pool", ProviderDigitalOcean},
	{"ibm-cloud.kubernetes.io/worker-id", ProviderIBM},
	{"csi.hetzner.cloud/location", ProviderHetzner},
}

// FromNode classifies a single node.
func FromNode(node *corev1.Node) Provider {
	if node == nil {
		return ProviderLocal
	}
	if p, ok := ParseProviderID(node.Spec.ProviderID); ok {
		return p
	}
	for _, l := range providerLabels {
		if _, ok := node.Labels[l.key]; ok {
			return l.provider
		}
	}
	return ProviderLocal
}

// ParseProviderID maps a providerID to a known provider by its scheme.
func ParseProviderID(providerID string) (Provider, bool) {
	scheme, _, found := strings.Cut(strings.TrimSpace(providerID), "://")
	if !found {
		return "", false
	}
	p, ok := providerIDSchemes[strings.ToLower(scheme)]
	return p, ok
}
