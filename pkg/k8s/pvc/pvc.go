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

package pvc

import (
	"context"
	"fmt"
	"log/slog"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/utils/ptr"

	"github.com/NVIDIA/deploykit/pkg/errors"
	"github.com/NVIDIA/deploykit/pkg/k8s"
)

// Spec describes the claim to ensure. StorageClass is optional; when empty
// the cluster default class applies.
type Spec struct {
	Namespace    string `json:"namespace" yaml:"namespace"`
	Name         string `json:"name" yaml:"name"`
	Size         string `json:"size" yaml:"size"`
	StorageClass string `json:"storageClass,omitempty" yaml:"storageClass,omitempty"`
}

// Outcome reports what EnsureExists did.
type Outcome string

const (
	OutcomeExisting Outcome = "existing"
	OutcomeCreated  Outcome = "created"
)

// Client is the subset of the PVC API used for provisioning.
type Client interface {
	Get(ctx context.Context, namespace, name string) (*corev1.PersistentVolumeClaim, error)
	Create(ctx context.Context, namespace string, claim *corev1.PersistentVolumeClaim) (*corev1.PersistentVolumeClaim, error)
}

type clientsetClient struct {
	cs kubernetes.Interface
}

// FromClientset adapts a client-go clientset to Client.
func FromClientset(cs kubernetes.Interface) Client {
	return &clientsetClient{cs: cs}
}

func (c *clientsetClient) Get(ctx context.Context, namespace, name string) (*corev1.PersistentVolumeClaim, error) {
	return c.cs.CoreV1().PersistentVolumeClaims(namespace).Get(ctx, name, metav1.GetOptions{})
}

func (c *clientsetClient) Create(ctx context.Context, namespace string, claim *corev1.PersistentVolumeClaim) (*corev1.PersistentVolumeClaim, error) {
	return c.cs.CoreV1().PersistentVolumeClaims(namespace).Create(ctx, claim, metav1.CreateOptions{})
}

// EnsureExists creates the claim unless it already exists.
func EnsureExists(ctx context.Context, c Client, spec Spec) error {
	_, err := Ensure(ctx, c, spec)
	return err
}

// Ensure is EnsureExists that also reports whether the claim was created.
func Ensure(ctx context.Context, c Client, spec Spec) (Outcome, error) {
	if spec.Namespace == "" || spec.Name == "" {
		return "", errors.New(errors.ErrCodeInvalidRequest, "pvc namespace and name are required")
	}

	errCtx := map[string]any{"namespace": spec.Namespace, "name": spec.Name}

	existing, getErr := c.Get(ctx, spec.Namespace, spec.Name)
	res := k8s.Lookup(existing, getErr)
	switch res.Status {
	case k8s.StatusFound:
		slog.Debug("pvc already exists", "namespace", spec.Namespace, "name", spec.Name)
		provisionTotal.WithLabelValues(string(OutcomeExisting)).Inc()
		return OutcomeExisting, nil
	case k8s.StatusFailed:
		provisionTotal.WithLabelValues("error").Inc()
		return "", errors.WrapWithContext(errors.ErrCodeProvisioning,
			fmt.Sprintf("failed to read pvc %s/%s", spec.Namespace, spec.Name), res.Err, errCtx)
	}

	// size is only read when there is something to create
	claim, err := NewClaim(spec)
	if err != nil {
		provisionTotal.WithLabelValues("error").Inc()
		return "", err
	}

	if _, err := c.Create(ctx, spec.Namespace, claim); err != nil {
		provisionTotal.WithLabelValues("error").Inc()
		return "", errors.WrapWithContext(errors.ErrCodeProvisioning,
			fmt.Sprintf("failed to create pvc %s/%s", spec.Namespace, spec.Name), err, errCtx)
	}

	slog.Info("pvc created",
		"namespace", spec.Namespace,
		"name", spec.Name,
		"size", spec.Size,
		"storageClass", spec.StorageClass)
	provisionTotal.WithLabelValues(string(OutcomeCreated)).Inc()
	return OutcomeCreated, nil
}

// NewClaim builds the create body for spec: ReadWriteOnce access, the
// requested storage, and a storage class only when one is given.
func NewClaim(spec Spec) (*corev1.PersistentVolumeClaim, error) {
	if spec.Namespace == "" || spec.Name == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "pvc namespace and name are required")
	}
	size, err := resource.ParseQuantity(spec.Size)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			"invalid pvc storage size", err, map[string]any{"size": spec.Size})
	}

	claim := &corev1.PersistentVolumeClaim{
		ObjectMeta: metav1.ObjectMeta{
			Name:      spec.Name,
			Namespace: spec.Namespace,
		},
		Spec: corev1.PersistentVolumeClaimSpec{
			AccessModes: []corev1.PersistentVolumeAccessMode{corev1.ReadWriteOnce},
			Resources: corev1.VolumeResourceRequirements{
				Requests: corev1.ResourceList{
					corev1.ResourceStorage: size,
				},
			},
		},
	}
	if spec.StorageClass != "" {
		claim.Spec.StorageClassName = ptr.To(spec.StorageClass)
	}
	return claim, nil
}
