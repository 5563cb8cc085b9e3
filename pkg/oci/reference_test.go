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
	"testing"
)

func TestParseReference(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantReg  string
		wantRepo string
		wantTag  string
		wantErr  bool
	}{
		{
			name:     "with tag",
			input:    "oci://ghcr.io/acme/todo-app:v1.0.0",
			wantReg:  "ghcr.io",
			wantRepo: "acme/todo-app",
			wantTag:  "v1.0.0",
		},
		{
			name:     "without tag returns empty (caller applies default)",
			input:    "oci://ghcr.io/acme/todo-app",
			wantReg:  "ghcr.io",
			wantRepo: "acme/todo-app",
		},
		{
			name:     "with port and tag",
			input:    "oci://localhost:5000/test/app:v1",
			wantReg:  "localhost:5000",
			wantRepo: "test/app",
			wantTag:  "v1",
		},
		{
			name:     "deeply nested repository",
			input:    "oci://ghcr.io/org/team/project/app:latest",
			wantReg:  "ghcr.io",
			wantRepo: "org/team/project/app",
			wantTag:  "latest",
		},
		{
			name:    "missing scheme",
			input:   "ghcr.io/acme/todo-app:v1",
			wantErr: true,
		},
		{
			name:    "local path",
			input:   "./out",
			wantErr: true,
		},
		{
			name:    "empty reference",
			input:   "oci://",
			wantErr: true,
		},
		{
			name:    "invalid characters",
			input:   "oci://ghcr.io/INVALID/App:v1",
			wantErr: true,
		},
		{
			name:    "digest pinned",
			input:   "oci://ghcr.io/acme/app@sha256:" + "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ParseReference(tt.input)

			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseReference() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			if ref.Registry != tt.wantReg {
				t.Errorf("Registry = %v, want %v", ref.Registry, tt.wantReg)
			}
			if ref.Repository != tt.wantRepo {
				t.Errorf("Repository = %v, want %v", ref.Repository, tt.wantRepo)
			}
			if ref.Tag != tt.wantTag {
				t.Errorf("Tag = %v, want %v", ref.Tag, tt.wantTag)
			}
		})
	}
}

func TestReference_String(t *testing.T) {
	ref := &Reference{Registry: "ghcr.io", Repository: "acme/app", Tag: "v1"}
	if got := ref.String(); got != "oci://ghcr.io/acme/app:v1" {
		t.Errorf("String() = %s", got)
	}
	if got := ref.ImageReference(); got != "ghcr.io/acme/app:v1" {
		t.Errorf("ImageReference() = %s", got)
	}

	untagged := &Reference{Registry: "ghcr.io", Repository: "acme/app"}
	if got := untagged.String(); got != "oci://ghcr.io/acme/app" {
		t.Errorf("String() = %s", got)
	}
}

func TestReference_TagOrDefault(t *testing.T) {
	untagged := &Reference{Registry: "ghcr.io", Repository: "acme/app"}
	got := untagged.TagOrDefault()
	if got.Tag != DefaultTag {
		t.Errorf("TagOrDefault() tag = %s, want %s", got.Tag, DefaultTag)
	}
	if untagged.Tag != "" {
		t.Error("TagOrDefault() must not modify the receiver")
	}

	tagged := untagged.WithTag("v2")
	if tagged.TagOrDefault().Tag != "v2" {
		t.Error("TagOrDefault() replaced an explicit tag")
	}
}

func TestIsOCITarget(t *testing.T) {
	if !IsOCITarget("oci://ghcr.io/a/b") {
		t.Error("expected oci target")
	}
	if IsOCITarget("/tmp/out.tar.gz") {
		t.Error("local path is not an oci target")
	}
}
