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
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/deploykit/pkg/logging"
	"github.com/NVIDIA/deploykit/pkg/serializer"
)

const (
	name           = "deployctl"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// globalFlags returns fresh flag values for each root command; urfave
// flags hold parse state.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "info",
			Usage:   "Log level (debug, info, warn, error)",
			Sources: cli.EnvVars(logging.EnvLogLevel),
		},
		&cli.StringFlag{
			Name:    "kubeconfig",
			Aliases: []string{"k"},
			Usage:   "Path to kubeconfig file (default: KUBECONFIG, ~/.kube/config, then in-cluster)",
			Sources: cli.EnvVars("KUBECONFIG"),
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path for the command result (default: stdout)",
			Sources: cli.EnvVars("DEPLOYCTL_OUTPUT"),
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"t"},
			Value:   string(serializer.FormatYAML),
			Usage:   fmt.Sprintf("Output format (supported values: %s)", serializer.SupportedFormats()),
			Sources: cli.EnvVars("DEPLOYCTL_FORMAT"),
		},
	}
}

// newRootCmd builds the command tree.
func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Usage:                 "Validate deployment inputs and confirm deployments are live",
		Description: `deployctl wraps the deploykit primitives used while rolling an
application onto a Kubernetes cluster:

  validate-resources  check CPU/memory request and limit pairs
  env                 resolve .env and manifest-declared variables
  package             tar and gzip an application directory (optionally push it)
  cluster-type        classify the cluster's cloud provider
  ensure-pvc          create a PersistentVolumeClaim unless it exists
  delete              delete a resource, treating "not found" as success
  wait                poll HTTP health endpoints until they answer 200
  frontend-check      confirm a URL serves HTML`,
		Flags:  globalFlags(),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Commands: []*cli.Command{
			validateResourcesCmd(),
			envCmd(),
			packageCmd(),
			clusterTypeCmd(),
			ensurePVCCmd(),
			deleteCmd(),
			waitCmd(),
			frontendCheckCmd(),
		},
	}
}

// Execute runs the CLI with os.Args. It is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
