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

// Package archive packages an application source directory into a
// gzip-compressed tarball for upload.
//
// Member names are relative to the source root and prefixed with "./", so
// a file hello.txt directly under the source is stored as ./hello.txt:
//
//	if err := archive.CreateTarball(ctx, "./app", "/tmp/app.tar.gz"); err != nil {
//	    return err
//	}
//	sum, err := archive.WriteChecksumFile("/tmp/app.tar.gz")
//
// A missing source directory fails with SOURCE_NOT_FOUND before any output
// is created. The destination is written to a temporary sibling and renamed
// into place, so an existing file is replaced only on success.
package archive
