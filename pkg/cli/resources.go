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

	"github.com/NVIDIA/deploykit/pkg/quantity"
)

// resourceReport is the output of validate-resources.
type resourceReport struct {
	Valid  bool            `json:"valid" yaml:"valid"`
	Limits quantity.Limits `json:"limits" yaml:"limits"`
}

func validateResourcesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate-resources",
		EnableShellCompletion: true,
		Usage:                 "Check that CPU and memory requests do not exceed their limits.",
		Description: `Parses Kubernetes style quantities ("500m", "2", "512Mi", "1Gi") and
fails when a request is larger than its limit. A pair with either side
omitted is not compared.

Examples:

  deployctl validate-resources --cpu-request 500m --cpu-limit 1 \
    --memory-request 256Mi --memory-limit 1Gi`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "cpu-request",
				Usage:   "CPU request (e.g. 250m, 0.5, 2)",
				Sources: cli.EnvVars("DEPLOYCTL_CPU_REQUEST"),
			},
			&cli.StringFlag{
				Name:    "cpu-limit",
				Usage:   "CPU limit",
				Sources: cli.EnvVars("DEPLOYCTL_CPU_LIMIT"),
			},
			&cli.StringFlag{
				Name:    "memory-request",
				Usage:   "Memory request (e.g. 128Mi, 1Gi, 500M)",
				Sources: cli.EnvVars("DEPLOYCTL_MEMORY_REQUEST"),
			},
			&cli.StringFlag{
				Name:    "memory-limit",
				Usage:   "Memory limit",
				Sources: cli.EnvVars("DEPLOYCTL_MEMORY_LIMIT"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			limits := quantity.Limits{
				CPURequest:    cmd.String("cpu-request"),
				CPULimit:      cmd.String("cpu-limit"),
				MemoryRequest: cmd.String("memory-request"),
				MemoryLimit:   cmd.String("memory-limit"),
			}
			if err := limits.Validate(); err != nil {
				return err
			}

			slog.Debug("resource limits valid", "limits", limits)
			return writeResult(ctx, cmd, resourceReport{Valid: true, Limits: limits})
		},
	}
}
