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

package oci

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"
	"oras.land/oras-go/v2/content"
	"oras.land/oras-go/v2/content/memory"

	apperrors "github.com/NVIDIA/deploykit/pkg/errors"
)

func TestStripProtocol(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"https prefix", "https://ghcr.io", "ghcr.io"},
		{"http prefix", "http://localhost:5000", "localhost:5000"},
		{"no prefix", "registry.example.com", "registry.example.com"},
		{"with port no prefix", "localhost:5000", "localhost:5000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripProtocol(tt.input); got != tt.expected {
				t.Errorf("stripProtocol(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func writeTarball(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "todo-app.tar.gz")
	// gzip magic followed by arbitrary bytes; content is opaque to the push
	if err := os.WriteFile(path, []byte{0x1f, 0x8b, 0x08, 0x00, 0x01, 0x02}, 0o600); err != nil {
		t.Fatalf("failed to write tarball: %v", err)
	}
	return path
}

func TestPush_Validation(t *testing.T) {
	tarball := writeTarball(t)

	tests := []struct {
		name     string
		opts     PushOptions
		wantCode apperrors.ErrorCode
	}{
		{
			name:     "empty tag",
			opts:     PushOptions{Tarball: tarball, Registry: "localhost:5000", Repository: "test/app"},
			wantCode: apperrors.ErrCodeInvalidRequest,
		},
		{
			name:     "missing tarball",
			opts:     PushOptions{Tarball: filepath.Join(t.TempDir(), "none.tar.gz"), Registry: "localhost:5000", Repository: "test/app", Tag: "v1"},
			wantCode: apperrors.ErrCodeSourceNotFound,
		},
		{
			name:     "directory instead of tarball",
			opts:     PushOptions{Tarball: t.TempDir(), Registry: "localhost:5000", Repository: "test/app", Tag: "v1"},
			wantCode: apperrors.ErrCodeInvalidRequest,
		},
		{
			name:     "invalid repository",
			opts:     PushOptions{Tarball: tarball, Registry: "localhost:5000", Repository: "Test/App", Tag: "v1"},
			wantCode: apperrors.ErrCodeInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Push(context.Background(), tt.opts)
			if err == nil {
				t.Fatal("Push() expected error")
			}
			if code := apperrors.CodeOf(err); code != tt.wantCode {
				t.Errorf("Push() code = %s, want %s (%v)", code, tt.wantCode, err)
			}
		})
	}
}

func TestPushTo_MemoryTarget(t *testing.T) {
	ctx := context.Background()
	tarball := writeTarball(t)
	dst := memory.New()

	res, err := pushTo(ctx, PushOptions{
		Tarball:     tarball,
		Tag:         "v1",
		Annotations: map[string]string{ociv1.AnnotationVersion: "v1"},
	}, dst)
	if err != nil {
		t.Fatalf("pushTo() error = %v", err)
	}
	if res.Digest == "" {
		t.Fatal("pushTo() returned empty digest")
	}

	desc, err := dst.Resolve(ctx, "v1")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if desc.Digest.String() != res.Digest {
		t.Errorf("tag resolves to %s, want %s", desc.Digest, res.Digest)
	}

	raw, err := content.FetchAll(ctx, dst, desc)
	if err != nil {
		t.Fatalf("FetchAll() error = %v", err)
	}
	var manifest ociv1.Manifest
	if err := json.Unmarshal(raw, &manifest); err != nil {
		t.Fatalf("failed to decode manifest: %v", err)
	}

	if manifest.ArtifactType != ArtifactType {
		t.Errorf("ArtifactType = %s, want %s", manifest.ArtifactType, ArtifactType)
	}
	if len(manifest.Layers) != 1 {
		t.Fatalf("layers = %d, want 1", len(manifest.Layers))
	}
	layer := manifest.Layers[0]
	if layer.MediaType != ociv1.MediaTypeImageLayerGzip {
		t.Errorf("layer media type = %s", layer.MediaType)
	}
	if layer.Annotations[ociv1.AnnotationTitle] != "todo-app.tar.gz" {
		t.Errorf("layer title = %s", layer.Annotations[ociv1.AnnotationTitle])
	}
	if manifest.Annotations[ociv1.AnnotationVersion] != "v1" {
		t.Errorf("manifest annotations = %v", manifest.Annotations)
	}

	layerData, err := content.FetchAll(ctx, dst, layer)
	if err != nil {
		t.Fatalf("FetchAll(layer) error = %v", err)
	}
	want, _ := os.ReadFile(tarball)
	if string(layerData) != string(want) {
		t.Error("layer content differs from tarball")
	}
}

func TestCreateAuthClient_InsecureTLS(t *testing.T) {
	c := createAuthClient(false, true)
	if c.Client == nil {
		t.Fatal("expected http client")
	}
	if c.Cache == nil {
		t.Error("expected auth cache")
	}
}
