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

package client

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/util/homedir"

	"github.com/NVIDIA/deploykit/pkg/defaults"
)

// Interface is an alias for kubernetes.Interface so callers can pass
// fake.NewClientset() in tests.
type Interface = kubernetes.Interface

type cacheEntry struct {
	client *kubernetes.Clientset
	config *rest.Config
}

var (
	cacheMu sync.Mutex
	cache   = map[string]cacheEntry{}
)

// Get returns a cached client for the kubeconfig path, building it on first
// use. An empty path means automatic discovery (see Build). Failed builds
// are not cached, so a later call can succeed once the config appears.
func Get(kubeconfig string) (Interface, *rest.Config, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if e, ok := cache[kubeconfig]; ok {
		return e.client, e.config, nil
	}

	cs, cfg, err := Build(kubeconfig)
	if err != nil {
		return nil, nil, err
	}
	cache[kubeconfig] = cacheEntry{client: cs, config: cfg}
	return cs, cfg, nil
}

// Build creates a new client, bypassing the cache.
//
// When kubeconfig is empty the config is discovered from:
//  1. KUBECONFIG environment variable
//  2. ~/.kube/config (if it exists)
//  3. In-cluster service account
func Build(kubeconfig string) (*kubernetes.Clientset, *rest.Config, error) {
	path := ResolveKubeconfig(kubeconfig)

	var config *rest.Config
	var err error

	// InClusterConfig directly avoids the "Neither --kubeconfig nor --master" warning.
	if path == "" {
		config, err = rest.InClusterConfig()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get in-cluster config: %w", err)
		}
	} else {
		config, err = clientcmd.BuildConfigFromFlags("", path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build kube config from %s: %w", path, err)
		}
	}

	config.QPS = defaults.K8sClientQPS
	config.Burst = defaults.K8sClientBurst
	config.Timeout = defaults.K8sClientTimeout

	cs, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}
	return cs, config, nil
}

// ResolveKubeconfig returns the kubeconfig file that Build would use, or an
// empty string when it would fall back to in-cluster configuration.
func ResolveKubeconfig(kubeconfig string) string {
	if kubeconfig != "" {
		return kubeconfig
	}
	if env := os.Getenv("KUBECONFIG"); env != "" {
		return env
	}
	home := homedir.HomeDir()
	if home == "" {
		return ""
	}
	path := filepath.Join(home, ".kube", "config")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
