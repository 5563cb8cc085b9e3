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
	"strings"

	"github.com/urfave/cli/v3"
	apierrors "k8s.io/apimachinery/pkg/api/errors"

	"github.com/NVIDIA/deploykit/pkg/defaults"
	"github.com/NVIDIA/deploykit/pkg/k8s/cluster"
	"github.com/NVIDIA/deploykit/pkg/k8s/deleter"
	"github.com/NVIDIA/deploykit/pkg/k8s/pvc"
)

type clusterTypeResult struct {
	Provider cluster.Provider `json:"provider" yaml:"provider"`
}

type pvcResult struct {
	pvc.Spec `json:",inline" yaml:",inline"`
	Outcome  pvc.Outcome `json:"outcome" yaml:"outcome"`
}

type deleteResult struct {
	Kind      string         `json:"kind" yaml:"kind"`
	Namespace string         `json:"namespace" yaml:"namespace"`
	Name      string         `json:"name" yaml:"name"`
	Result    deleter.Result `json:"result" yaml:"result"`
}

func namespaceFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "namespace",
		Aliases: []string{"n"},
		Value:   "default",
		Usage:   "Kubernetes namespace",
		Sources: cli.EnvVars("DEPLOYCTL_NAMESPACE"),
	}
}

func clusterTypeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "cluster-type",
		EnableShellCompletion: true,
		Usage:                 "Report the cloud provider hosting the current cluster.",
		Description: `Inspects one node's providerID and labels. Clusters that cannot be
reached, have no nodes, or carry no recognizable markers report "local".

Examples:

  deployctl cluster-type
  deployctl cluster-type --kubeconfig ~/.kube/prod --format json`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, cancel := context.WithTimeout(ctx, defaults.K8sOperationTimeout)
			defer cancel()

			provider := cluster.ProviderLocal
			cs, err := kubeClient(cmd.String("kubeconfig"))
			if err != nil {
				slog.Debug("kubernetes client unavailable, assuming local cluster", "error", err)
			} else {
				provider = cluster.NewDetector(cluster.FromClientset(cs)).ClusterType(ctx)
			}

			return writeResult(ctx, cmd, clusterTypeResult{Provider: provider})
		},
	}
}

func ensurePVCCmd() *cli.Command {
	return &cli.Command{
		Name:                  "ensure-pvc",
		EnableShellCompletion: true,
		Usage:                 "Create a ReadWriteOnce PersistentVolumeClaim unless it already exists.",
		Description: `Looks the claim up first and creates it only when the cluster reports
it as not found. An existing claim is left untouched even when its
size or storage class differ.

Examples:

  deployctl ensure-pvc --namespace apps --name todo-data
  deployctl ensure-pvc --namespace apps --name todo-data --size 10Gi --storage-class gp3`,
		Flags: []cli.Flag{
			namespaceFlag(),
			&cli.StringFlag{
				Name:     "name",
				Required: true,
				Usage:    "Claim name",
			},
			&cli.StringFlag{
				Name:  "size",
				Value: defaults.PVCStorageSize,
				Usage: "Requested storage",
			},
			&cli.StringFlag{
				Name:  "storage-class",
				Usage: "Storage class (default: cluster default class)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cs, err := kubeClient(cmd.String("kubeconfig"))
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.K8sOperationTimeout)
			defer cancel()

			spec := pvc.Spec{
				Namespace:    cmd.String("namespace"),
				Name:         cmd.String("name"),
				Size:         cmd.String("size"),
				StorageClass: cmd.String("storage-class"),
			}
			outcome, err := pvc.Ensure(ctx, pvc.FromClientset(cs), spec)
			if err != nil {
				if !apierrors.IsAlreadyExists(err) {
					return err
				}
				// created by someone else between our get and create
				slog.Info("claim created concurrently", "namespace", spec.Namespace, "name", spec.Name)
				outcome = pvc.OutcomeExisting
			}

			return writeResult(ctx, cmd, pvcResult{Spec: spec, Outcome: outcome})
		},
	}
}

func deleteCmd() *cli.Command {
	return &cli.Command{
		Name:                  "delete",
		EnableShellCompletion: true,
		Usage:                 "Delete a Kubernetes resource, succeeding when it is already gone.",
		Description: `Deletes with foreground propagation. A "not found" answer counts as
success and is reported as "absent".

Supported kinds: ` + joinKinds() + `

Examples:

  deployctl delete --kind deployment --name todo-app --namespace apps
  deployctl delete --kind svc --name todo-app -n apps`,
		Flags: []cli.Flag{
			namespaceFlag(),
			&cli.StringFlag{
				Name:     "kind",
				Required: true,
				Usage:    "Resource kind (short names and plurals accepted)",
			},
			&cli.StringFlag{
				Name:     "name",
				Required: true,
				Usage:    "Resource name",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			kind := deleter.NormalizeKind(cmd.String("kind"))
			cs, err := kubeClient(cmd.String("kubeconfig"))
			if err != nil {
				return err
			}
			del, err := deleter.ForKind(cs, kind)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.K8sOperationTimeout)
			defer cancel()

			name, namespace := cmd.String("name"), cmd.String("namespace")
			result, err := deleter.Delete(ctx, del, name, namespace, kind)
			if err != nil {
				return err
			}

			return writeResult(ctx, cmd, deleteResult{
				Kind:      kind,
				Namespace: namespace,
				Name:      name,
				Result:    result,
			})
		},
	}
}

func joinKinds() string {
	return strings.Join(deleter.SupportedKinds(), ", ")
}
