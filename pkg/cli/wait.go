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
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/deploykit/pkg/defaults"
	"github.com/NVIDIA/deploykit/pkg/errors"
	"github.com/NVIDIA/deploykit/pkg/health"
)

// newProber is replaced in tests.
var newProber = func() health.Prober { return health.NewHTTPProber() }

// healthReport lists one poll result per path.
type healthReport []health.Result

func (r healthReport) TableHeader() []string { return []string{"URL", "STATE", "ATTEMPTS"} }

func (r healthReport) TableRows() [][]string {
	rows := make([][]string, 0, len(r))
	for _, res := range r {
		rows = append(rows, []string{res.URL, string(res.State), fmt.Sprint(res.Attempts)})
	}
	return rows
}

type frontendResult struct {
	URL     string `json:"url" yaml:"url"`
	Healthy bool   `json:"healthy" yaml:"healthy"`
}

func waitCmd() *cli.Command {
	return &cli.Command{
		Name:                  "wait",
		EnableShellCompletion: true,
		Usage:                 "Poll health endpoints on a NodePort until each returns 200.",
		Description: `Waits --initial-wait, then probes http://<host>:<node-port><path> up to
--max-retries times, --interval apart. Only a 200 response counts as
healthy. Several --path values are polled concurrently and the command
fails if any of them never becomes healthy.

Examples:

  deployctl wait --node-port 30080
  deployctl wait --node-port 30080 --path /healthz --path /ready --max-retries 10`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "node-port",
				Aliases:  []string{"p"},
				Required: true,
				Usage:    "NodePort the service is exposed on",
			},
			&cli.StringSliceFlag{
				Name:  "path",
				Value: []string{"/"},
				Usage: "Health check path (repeatable)",
			},
			&cli.StringFlag{
				Name:    "host",
				Value:   defaults.HealthProbeHost,
				Usage:   "Host to probe",
				Sources: cli.EnvVars("DEPLOYCTL_HEALTH_HOST"),
			},
			&cli.DurationFlag{
				Name:  "initial-wait",
				Value: defaults.HealthInitialWait,
				Usage: "Delay before the first probe",
			},
			&cli.DurationFlag{
				Name:  "interval",
				Value: defaults.HealthPollInterval,
				Usage: "Delay between probes",
			},
			&cli.IntFlag{
				Name:  "max-retries",
				Value: defaults.HealthMaxRetries,
				Usage: "Maximum number of probes",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: defaults.HealthProbeTimeout,
				Usage: "Per-probe timeout",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			policy := health.Policy{
				InitialWait:  cmd.Duration("initial-wait"),
				Interval:     cmd.Duration("interval"),
				MaxRetries:   int(cmd.Int("max-retries")),
				ProbeTimeout: cmd.Duration("timeout"),
			}
			paths := cmd.StringSlice("path")
			poller := health.NewPoller(newProber())

			report := make(healthReport, len(paths))
			var g errgroup.Group
			for i, path := range paths {
				target := health.Target{
					Host:     cmd.String("host"),
					NodePort: int(cmd.Int("node-port")),
					Path:     path,
				}
				g.Go(func() error {
					report[i] = poller.Poll(ctx, target, policy)
					return nil
				})
			}
			_ = g.Wait()

			if err := writeResult(ctx, cmd, report); err != nil {
				return err
			}

			var unhealthy []string
			for _, r := range report {
				if !r.Healthy() {
					unhealthy = append(unhealthy, r.URL)
				}
			}
			if len(unhealthy) > 0 {
				return errors.NewWithContext(errors.ErrCodeUnavailable,
					fmt.Sprintf("deployment not healthy: %s", strings.Join(unhealthy, ", ")),
					map[string]any{"urls": unhealthy})
			}

			slog.Info("deployment healthy", "paths", len(paths))
			return nil
		},
	}
}

func frontendCheckCmd() *cli.Command {
	return &cli.Command{
		Name:                  "frontend-check",
		EnableShellCompletion: true,
		Usage:                 "Check that a URL answers 200 with an HTML body.",
		Description: `Issues one GET and fails unless the status is 200 and the content type
is text/html.

Examples:

  deployctl frontend-check --url http://localhost:30080/`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "url",
				Aliases:  []string{"u"},
				Required: true,
				Usage:    "Frontend URL",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: defaults.HealthProbeTimeout,
				Usage: "Request timeout",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			url := cmd.String("url")
			if err := health.CheckFrontend(ctx, newProber(), url, cmd.Duration("timeout")); err != nil {
				return err
			}
			return writeResult(ctx, cmd, frontendResult{URL: url, Healthy: true})
		},
	}
}
