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

// Package oci publishes packaged application source to OCI registries.
//
// The tarball produced by the archive package is pushed as the single
// layer of an OCI 1.1 artifact using ORAS:
//
//	ref, err := oci.ParseReference("oci://ghcr.io/acme/todo-app:v1.0.0")
//	if err != nil {
//	    return err
//	}
//	res, err := oci.Push(ctx, oci.PushOptions{
//	    Tarball:    "/tmp/todo-app.tar.gz",
//	    Registry:   ref.Registry,
//	    Repository: ref.Repository,
//	    Tag:        ref.Tag,
//	})
//
// # Configuration
//
//   - PlainHTTP: use HTTP instead of HTTPS (local development registries)
//   - InsecureTLS: skip TLS certificate verification
//
// # Authentication
//
// Credentials come from the Docker configuration (~/.docker/config.json)
// and its credential helpers. Without one, the push is anonymous.
//
// # Artifact Type
//
// Artifacts carry the artifact type "application/vnd.nvidia.deploykit.source.v1"
// and a gzip tar layer, so they are never mistaken for runnable images.
package oci
