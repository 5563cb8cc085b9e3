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

package archive

import (
	"archive/tar"
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"

	"github.com/NVIDIA/deploykit/pkg/errors"
)

const (
	memberPrefix = "./"
	tempPattern  = ".deploykit-*.tar.gz.tmp"
)

// CreateTarball writes a gzip tar of everything under sourceDir to destPath.
func CreateTarball(ctx context.Context, sourceDir, destPath string) error {
	info, err := os.Stat(sourceDir)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.WrapWithContext(errors.ErrCodeSourceNotFound,
				"source directory does not exist", err,
				map[string]any{"source": sourceDir})
		}
		return errors.Wrap(errors.ErrCodeInternal, "failed to stat source directory", err)
	}
	if !info.IsDir() {
		return errors.NewWithContext(errors.ErrCodeSourceNotFound,
			"source is not a directory", map[string]any{"source": sourceDir})
	}

	absDest, err := filepath.Abs(destPath)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidRequest, "invalid destination path", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(absDest), tempPattern)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to create temporary archive", err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpPath)
		}
	}()

	skip := map[string]bool{absDest: true, tmpPath: true}
	count, err := writeArchive(ctx, tmp, sourceDir, skip)
	if closeErr := tmp.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("failed to close archive: %w", closeErr)
	}
	if err != nil {
		return err
	}

	if err := os.Rename(tmpPath, absDest); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to move archive into place", err)
	}
	committed = true

	slog.Debug("tarball created",
		"source", sourceDir,
		"path", absDest,
		"entries", count,
	)
	return nil
}

func writeArchive(ctx context.Context, w io.Writer, sourceDir string, skip map[string]bool) (int, error) {
	gz := gzip.NewWriter(w)
	tw := tar.NewWriter(gz)

	count := 0
	walkErr := filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("context cancelled: %w", ctxErr)
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		if skip[abs] {
			return nil
		}

		rel, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return err
		}
		if err := addMember(tw, path, memberName(rel, d.IsDir()), d); err != nil {
			return err
		}
		count++
		return nil
	})
	if walkErr != nil {
		return 0, errors.Wrap(errors.ErrCodeInternal, "failed to archive source", walkErr)
	}

	if err := tw.Close(); err != nil {
		return 0, fmt.Errorf("failed to finalize tar: %w", err)
	}
	if err := gz.Close(); err != nil {
		return 0, fmt.Errorf("failed to finalize gzip: %w", err)
	}
	return count, nil
}

func memberName(rel string, isDir bool) string {
	if rel == "." {
		return memberPrefix
	}
	name := memberPrefix + filepath.ToSlash(rel)
	if isDir {
		name += "/"
	}
	return name
}

func addMember(tw *tar.Writer, path, name string, d fs.DirEntry) error {
	info, err := d.Info()
	if err != nil {
		return err
	}

	var link string
	if info.Mode()&fs.ModeSymlink != 0 {
		if link, err = os.Readlink(path); err != nil {
			return fmt.Errorf("failed to read symlink %s: %w", path, err)
		}
	}

	hdr, err := tar.FileInfoHeader(info, link)
	if err != nil {
		return fmt.Errorf("failed to build header for %s: %w", path, err)
	}
	hdr.Name = name
	if err := tw.WriteHeader(hdr); err != nil {
		return fmt.Errorf("failed to write header for %s: %w", path, err)
	}

	if !info.Mode().IsRegular() {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(tw, f); err != nil {
		return fmt.Errorf("failed to copy %s: %w", path, err)
	}
	return nil
}
