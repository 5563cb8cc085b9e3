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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NVIDIA/deploykit/pkg/defaults"
)

const testKubeconfig = `apiVersion: v1
kind: Config
clusters:
- cluster:
    server: https://127.0.0.1:6443
  name: test
contexts:
- context:
    cluster: test
    user: test
  name: test
current-context: test
users:
- name: test
  user:
    token: abc
`

func writeKubeconfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	if err := os.WriteFile(path, []byte(testKubeconfig), 0600); err != nil {
		t.Fatalf("failed to write kubeconfig: %v", err)
	}
	return path
}

func TestBuild_PathResolution(t *testing.T) {
	tests := []struct {
		name          string
		kubeconfigArg string
		kubeconfigEnv string
		errorContains string
	}{
		{
			name:          "explicit invalid path",
			kubeconfigArg: "/nonexistent/path/to/kubeconfig",
			errorContains: "failed to build kube config",
		},
		{
			name:          "env var with invalid path",
			kubeconfigEnv: "/nonexistent/env/kubeconfig",
			errorContains: "failed to build kube config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("KUBECONFIG", tt.kubeconfigEnv)

			_, _, err := Build(tt.kubeconfigArg)
			if err == nil {
				t.Fatal("Build() expected error")
			}
			if !strings.Contains(err.Error(), tt.errorContains) {
				t.Errorf("Build() error = %v, want error containing %q", err, tt.errorContains)
			}
		})
	}
}

func TestBuild_AppliesDefaults(t *testing.T) {
	path := writeKubeconfig(t)

	cs, cfg, err := Build(path)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if cs == nil {
		t.Fatal("Build() returned nil clientset")
	}
	if cfg.Host != "https://127.0.0.1:6443" {
		t.Errorf("Host = %s", cfg.Host)
	}
	if cfg.QPS != defaults.K8sClientQPS || cfg.Burst != defaults.K8sClientBurst {
		t.Errorf("QPS/Burst = %v/%v", cfg.QPS, cfg.Burst)
	}
	if cfg.Timeout != defaults.K8sClientTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, defaults.K8sClientTimeout)
	}
}

func TestGet_CachesPerPath(t *testing.T) {
	path := writeKubeconfig(t)

	first, _, err := Get(path)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	second, _, err := Get(path)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if first != second {
		t.Error("Get() returned different clients for the same path")
	}

	other, _, err := Get(writeKubeconfig(t))
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if other == first {
		t.Error("Get() returned the same client for different paths")
	}
}

func TestGet_DoesNotCacheFailures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "late-config")

	if _, _, err := Get(path); err == nil {
		t.Fatal("Get() expected error for missing kubeconfig")
	}

	if err := os.WriteFile(path, []byte(testKubeconfig), 0600); err != nil {
		t.Fatalf("failed to write kubeconfig: %v", err)
	}
	if _, _, err := Get(path); err != nil {
		t.Errorf("Get() error after kubeconfig appeared = %v", err)
	}
}

func TestResolveKubeconfig(t *testing.T) {
	t.Run("explicit wins", func(t *testing.T) {
		t.Setenv("KUBECONFIG", "/from/env")
		if got := ResolveKubeconfig("/explicit"); got != "/explicit" {
			t.Errorf("ResolveKubeconfig() = %s", got)
		}
	})

	t.Run("env var", func(t *testing.T) {
		t.Setenv("KUBECONFIG", "/from/env")
		if got := ResolveKubeconfig(""); got != "/from/env" {
			t.Errorf("ResolveKubeconfig() = %s", got)
		}
	})

	t.Run("home config", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("KUBECONFIG", "")
		t.Setenv("HOME", home)
		t.Setenv("USERPROFILE", home)
		if got := ResolveKubeconfig(""); got != "" {
			t.Errorf("ResolveKubeconfig() = %s, want empty without ~/.kube/config", got)
		}

		path := filepath.Join(home, ".kube", "config")
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(testKubeconfig), 0600); err != nil {
			t.Fatal(err)
		}
		if got := ResolveKubeconfig(""); got != path {
			t.Errorf("ResolveKubeconfig() = %s, want %s", got, path)
		}
	})
}
