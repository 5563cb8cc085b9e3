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

package deleter

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"

	"github.com/NVIDIA/deploykit/pkg/errors"
	"github.com/NVIDIA/deploykit/pkg/k8s"
)

// DeleteFunc deletes the named resource in namespace.
type DeleteFunc func(ctx context.Context, name, namespace string) error

// Result reports what DeleteIfExists observed.
type Result string

const (
	ResultDeleted Result = "deleted"
	ResultAbsent  Result = "absent"
)

// DeleteIfExists calls del once. A not-found answer is success; any other
// failure is a DELETION error carrying kind for diagnostics.
func DeleteIfExists(ctx context.Context, del DeleteFunc, name, namespace, kind string) error {
	_, err := Delete(ctx, del, name, namespace, kind)
	return err
}

// Delete is DeleteIfExists that also reports whether the resource existed.
func Delete(ctx context.Context, del DeleteFunc, name, namespace, kind string) (Result, error) {
	res := k8s.Outcome(del(ctx, name, namespace))
	switch res.Status {
	case k8s.StatusFound:
		slog.Info("resource deleted", "kind", kind, "namespace", namespace, "name", name)
		deletionsTotal.WithLabelValues(kind, string(ResultDeleted)).Inc()
		return ResultDeleted, nil
	case k8s.StatusNotFound:
		slog.Debug("resource already absent", "kind", kind, "namespace", namespace, "name", name)
		deletionsTotal.WithLabelValues(kind, string(ResultAbsent)).Inc()
		return ResultAbsent, nil
	default:
		deletionsTotal.WithLabelValues(kind, "error").Inc()
		return "", errors.WrapWithContext(errors.ErrCodeDeletion,
			fmt.Sprintf("failed to delete %s %s/%s", kind, namespace, name), res.Err,
			map[string]any{"kind": kind, "namespace": namespace, "name": name})
	}
}

// foreground deletes dependents (pods, replica sets) before the owner.
func foreground() metav1.DeleteOptions {
	policy := metav1.DeletePropagationForeground
	return metav1.DeleteOptions{PropagationPolicy: &policy}
}

var kindDeleters = map[string]func(cs kubernetes.Interface) DeleteFunc{
	"deployment": func(cs kubernetes.Interface) DeleteFunc {
		return func(ctx context.Context, name, ns string) error {
			return cs.AppsV1().Deployments(ns).Delete(ctx, name, foreground())
		}
	},
	"statefulset": func(cs kubernetes.Interface) DeleteFunc {
		return func(ctx context.Context, name, ns string) error {
			return cs.AppsV1().StatefulSets(ns).Delete(ctx, name, foreground())
		}
	},
	"service": func(cs kubernetes.Interface) DeleteFunc {
		return func(ctx context.Context, name, ns string) error {
			return cs.CoreV1().Services(ns).Delete(ctx, name, foreground())
		}
	},
	"configmap": func(cs kubernetes.Interface) DeleteFunc {
		return func(ctx context.Context, name, ns string) error {
			return cs.CoreV1().ConfigMaps(ns).Delete(ctx, name, foreground())
		}
	},
	"secret": func(cs kubernetes.Interface) DeleteFunc {
		return func(ctx context.Context, name, ns string) error {
			return cs.CoreV1().Secrets(ns).Delete(ctx, name, foreground())
		}
	},
	"persistentvolumeclaim": func(cs kubernetes.Interface) DeleteFunc {
		return func(ctx context.Context, name, ns string) error {
			return cs.CoreV1().PersistentVolumeClaims(ns).Delete(ctx, name, foreground())
		}
	},
	"ingress": func(cs kubernetes.Interface) DeleteFunc {
		return func(ctx context.Context, name, ns string) error {
			return cs.NetworkingV1().Ingresses(ns).Delete(ctx, name, foreground())
		}
	},
	"job": func(cs kubernetes.Interface) DeleteFunc {
		return func(ctx context.Context, name, ns string) error {
			return cs.BatchV1().Jobs(ns).Delete(ctx, name, foreground())
		}
	},
}

var kindAliases = map[string]string{
	"deploy": "deployment",
	"sts":    "statefulset",
	"svc":    "service",
	"cm":     "configmap",
	"pvc":    "persistentvolumeclaim",
	"ing":    "ingress",
}

// NormalizeKind lowercases kind, strips a plural "s" and resolves short
// names (svc, pvc, ...). Unknown kinds are returned lowercased.
func NormalizeKind(kind string) string {
	k := strings.ToLower(strings.TrimSpace(kind))
	if full, ok := kindAliases[k]; ok {
		return full
	}
	if _, ok := kindDeleters[k]; ok {
		return k
	}
	if k == "ingresses" {
		return "ingress"
	}
	if trimmed := strings.TrimSuffix(k, "s"); trimmed != k {
		if _, ok := kindDeleters[trimmed]; ok {
			return trimmed
		}
	}
	return k
}

// ForKind returns a DeleteFunc for a supported kind using foreground
// propagation.
func ForKind(cs kubernetes.Interface, kind string) (DeleteFunc, error) {
	build, ok := kindDeleters[NormalizeKind(kind)]
	if !ok {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("unsupported resource kind %q (supported: %s)", kind, strings.Join(SupportedKinds(), ", ")),
			map[string]any{"kind": kind})
	}
	return build(cs), nil
}

// SupportedKinds lists the kinds ForKind accepts, sorted.
func SupportedKinds() []string {
	return slices.Sorted(maps.Keys(kindDeleters))
}
