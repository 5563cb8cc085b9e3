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
	"context"
	"log/slog"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"

	"github.com/NVIDIA/deploykit/pkg/k8s"
	"github.com/NVIDIA/deploykit/pkg/k8s/client"
)

// NodeLister lists cluster nodes.
type NodeLister interface {
	ListNodes(ctx context.Context) (*corev1.NodeList, error)
}

// NodeListerFunc adapts a function to NodeLister.
type NodeListerFunc func(ctx context.Context) (*corev1.NodeList, error)

// ListNodes implements NodeLister.
func (f NodeListerFunc) ListNodes(ctx context.Context) (*corev1.NodeList, error) {
	return f(ctx)
}

// FromClientset lists nodes through client-go. Only the first node is
// inspected, so the request is limited to one item.
func FromClientset(cs kubernetes.Interface) NodeLister {
	return NodeListerFunc(func(ctx context.Context) (*corev1.NodeList, error) {
		return cs.CoreV1().Nodes().List(ctx, metav1.ListOptions{Limit: 1})
	})
}

// Detector classifies the cluster behind a NodeLister.
type Detector struct {
	lister NodeLister
}

// NewDetector returns a Detector over lister.
func NewDetector(lister NodeLister) *Detector {
	return &Detector{lister: lister}
}

// ClusterType returns the provider of the first node, or ProviderLocal when
// nodes cannot be listed, none exist, or nothing identifies a provider.
func (d *Detector) ClusterType(ctx context.Context) Provider {
	nodes, err := d.lister.ListNodes(ctx)
	res := k8s.Lookup(nodes, err)
	if res.Status != k8s.StatusFound || res.Object == nil || len(res.Object.Items) == 0 {
		slog.Debug("no node metadata available, assuming local cluster",
			"status", res.Status.String(), "error", res.Err)
		return record(ProviderLocal)
	}

	node := &res.Object.Items[0]
	p := FromNode(node)
	slog.Debug("cluster provider detected",
		"provider", p.String(),
		"node", node.Name,
		"providerID", node.Spec.ProviderID)
	return record(p)
}

// Type builds (or reuses) a client for kubeconfig and classifies the
// cluster. A client that cannot be built yields ProviderLocal.
func Type(ctx context.Context, kubeconfig string) Provider {
	cs, _, err := client.Get(kubeconfig)
	if err != nil {
		slog.Debug("kubernetes client unavailable, assuming local cluster", "error", err)
		return record(ProviderLocal)
	}
	return NewDetector(FromClientset(cs)).ClusterType(ctx)
}
