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

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/deploykit/pkg/archive"
	"github.com/NVIDIA/deploykit/pkg/oci"
)

// packageResult is the output of the package command.
type packageResult struct {
	Tarball  string          `json:"tarball" yaml:"tarball"`
	Checksum string          `json:"checksum,omitempty" yaml:"checksum,omitempty"`
	Push     *oci.PushResult `json:"push,omitempty" yaml:"push,omitempty"`
}

func packageCmd() *cli.Command {
	return &cli.Command{
		Name:                  "package",
		EnableShellCompletion: true,
		Usage:                 "Create a gzip tarball of an application directory.",
		Description: `Archives every file under the source directory into a gzip tar.
Member names are relative to the source ("./app.py"). The tarball is
written atomically and never includes itself.

With --push the tarball is also uploaded to an OCI registry as a
single-layer artifact.

Examples:

  deployctl package --source ./todo-app --dest /tmp/todo-app.tar.gz --checksum
  deployctl package --source ./todo-app --dest /tmp/todo-app.tar.gz \
    --push oci://localhost:5000/acme/todo-app:v1 --plain-http`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "source",
				Aliases:  []string{"s"},
				Required: true,
				Usage:    "Directory to archive",
			},
			&cli.StringFlag{
				Name:     "dest",
				Required: true,
				Usage:    "Tarball path to write",
			},
			&cli.BoolFlag{
				Name:  "checksum",
				Usage: "Also write <dest>.sha256",
			},
			&cli.StringFlag{
				Name:    "push",
				Usage:   "OCI target to push the tarball to (oci://registry/repository[:tag])",
				Sources: cli.EnvVars("DEPLOYCTL_PUSH"),
			},
			&cli.BoolFlag{
				Name:  "plain-http",
				Usage: "Use HTTP instead of HTTPS for the registry",
			},
			&cli.BoolFlag{
				Name:  "insecure-tls",
				Usage: "Skip TLS certificate verification for the registry",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dest, err := filepath.Abs(cmd.String("dest"))
			if err != nil {
				return fmt.Errorf("invalid destination %q: %w", cmd.String("dest"), err)
			}

			if err := archive.CreateTarball(ctx, cmd.String("source"), dest); err != nil {
				return err
			}
			result := packageResult{Tarball: dest}

			if cmd.Bool("checksum") {
				sum, err := archive.WriteChecksumFile(dest)
				if err != nil {
					return err
				}
				result.Checksum = sum
			}

			if target := cmd.String("push"); target != "" {
				ref, err := oci.ParseReference(target)
				if err != nil {
					return err
				}
				ref = ref.TagOrDefault()

				pushed, err := oci.Push(ctx, oci.PushOptions{
					Tarball:     dest,
					Registry:    ref.Registry,
					Repository:  ref.Repository,
					Tag:         ref.Tag,
					PlainHTTP:   cmd.Bool("plain-http"),
					InsecureTLS: cmd.Bool("insecure-tls"),
				})
				if err != nil {
					return err
				}
				result.Push = pushed
			}

			slog.Info("package created", "tarball", dest)
			return writeResult(ctx, cmd, result)
		},
	}
}
