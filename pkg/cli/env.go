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
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/deploykit/pkg/defaults"
	"github.com/NVIDIA/deploykit/pkg/envvars"
)

const redacted = "********"

// envList renders entries as a NAME/VALUE table.
type envList []envvars.Entry

func (l envList) TableHeader() []string { return []string{"NAME", "VALUE"} }

func (l envList) TableRows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, e := range l {
		rows = append(rows, []string{e.Name, e.Value})
	}
	return rows
}

func envCmd() *cli.Command {
	return &cli.Command{
		Name:                  "env",
		EnableShellCompletion: true,
		Usage:                 "Resolve the environment variables an application deploys with.",
		Description: `Reads KEY=VALUE pairs from the application's .env file, then adds
every key listed under the manifest's key path (jac.toml,
"environment.keys" by default) that is set in the current environment.
Missing files contribute nothing.

Examples:

  deployctl env --app-dir ./todo-app
  deployctl env --app-dir ./todo-app --redact --format table`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "app-dir",
				Aliases: []string{"d"},
				Value:   ".",
				Usage:   "Application directory",
				Sources: cli.EnvVars("DEPLOYCTL_APP_DIR"),
			},
			&cli.StringFlag{
				Name:  "env-file",
				Value: defaults.EnvFileName,
				Usage: "Env file name inside the application directory",
			},
			&cli.StringFlag{
				Name:  "manifest-file",
				Value: defaults.ManifestFileName,
				Usage: "Manifest file name inside the application directory",
			},
			&cli.StringFlag{
				Name:  "manifest-key-path",
				Value: defaults.ManifestEnvKeyPath,
				Usage: "Dotted TOML path of the declared environment keys",
			},
			&cli.BoolFlag{
				Name:  "redact",
				Usage: "Replace values with a fixed mask",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			loader := envvars.NewLoader(
				envvars.WithFileNames(cmd.String("env-file"), cmd.String("manifest-file")),
				envvars.WithManifestReader(envvars.NewTOMLManifest(cmd.String("manifest-key-path"))),
			)

			appDir := cmd.String("app-dir")
			entries, err := loader.Load(appDir)
			if err != nil {
				return err
			}
			slog.Debug("environment resolved", "appDir", appDir, "count", len(entries))

			if cmd.Bool("redact") {
				for i := range entries {
					entries[i].Value = redacted
				}
			}
			return writeResult(ctx, cmd, envList(entries))
		},
	}
}
