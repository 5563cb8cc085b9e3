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
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/kubernetes/fake"
	k8stesting "k8s.io/client-go/testing"

	"github.com/NVIDIA/deploykit/pkg/errors"
)

func countingDelete(err error) (DeleteFunc, *int) {
	calls := 0
	return func(context.Context, string, string) error {
		calls++
		return err
	}, &calls
}

func TestDeleteIfExists(t *testing.T) {
	gr := schema.GroupResource{Group: "apps", Resource: "deployments"}

	tests := []struct {
		name       string
		err        error
		wantResult Result
		wantErr    bool
	}{
		{name: "deleted", err: nil, wantResult: ResultDeleted},
		{name: "not found is success", err: apierrors.NewNotFound(gr, "web"), wantResult: ResultAbsent},
		{name: "forbidden propagates", err: apierrors.NewForbidden(gr, "web", stderrors.New("rbac")), wantErr: true},
		{name: "transport error propagates", err: stderrors.New("connection reset"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			del, calls := countingDelete(tt.err)

			result, err := Delete(context.Background(), del, "web", "apps", "deployment")
			assert.Equal(t, 1, *calls, "delete must be attempted exactly once")
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tt.wantResult, result)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, errors.ErrCodeDeletion, errors.CodeOf(err))
			assert.Contains(t, err.Error(), "deployment")

			var se *errors.StructuredError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, "deployment", se.Context["kind"])
		})
	}
}

func TestDeleteIfExists_NotFoundReturnsNil(t *testing.T) {
	del, calls := countingDelete(apierrors.NewNotFound(schema.GroupResource{Resource: "services"}, "svc"))
	require.NoError(t, DeleteIfExists(context.Background(), del, "svc", "default", "service"))
	assert.Equal(t, 1, *calls)
}

func TestForKind_Clientset(t *testing.T) {
	cs := fake.NewClientset(
		&appsv1.Deployment{ObjectMeta: metav1.ObjectMeta{Name: "web", Namespace: "apps"}},
		&corev1.Service{ObjectMeta: metav1.ObjectMeta{Name: "web", Namespace: "apps"}},
	)

	del, err := ForKind(cs, "Deployment")
	require.NoError(t, err)
	require.NoError(t, DeleteIfExists(context.Background(), del, "web", "apps", "deployment"))

	_, err = cs.AppsV1().Deployments("apps").Get(context.Background(), "web", metav1.GetOptions{})
	assert.True(t, apierrors.IsNotFound(err))

	// second delete is tolerated
	require.NoError(t, DeleteIfExists(context.Background(), del, "web", "apps", "deployment"))

	svcDel, err := ForKind(cs, "svc")
	require.NoError(t, err)
	result, err := Delete(context.Background(), svcDel, "web", "apps", "service")
	require.NoError(t, err)
	assert.Equal(t, ResultDeleted, result)
}

func TestForKind_ForegroundPropagation(t *testing.T) {
	cs := fake.NewClientset()
	var opts metav1.DeleteOptions
	cs.PrependReactor("delete", "jobs", func(a k8stesting.Action) (bool, runtime.Object, error) {
		opts = a.(k8stesting.DeleteAction).GetDeleteOptions()
		return true, nil, nil
	})

	del, err := ForKind(cs, "jobs")
	require.NoError(t, err)
	require.NoError(t, del(context.Background(), "migrate", "apps"))
	require.NotNil(t, opts.PropagationPolicy)
	assert.Equal(t, metav1.DeletePropagationForeground, *opts.PropagationPolicy)
}

func TestForKind_Unsupported(t *testing.T) {
	_, err := ForKind(fake.NewClientset(), "customresource")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
}

func TestNormalizeKind(t *testing.T) {
	tests := map[string]string{
		"Deployment":             "deployment",
		"deployments":            "deployment",
		"deploy":                 "deployment",
		"sts":                    "statefulset",
		"svc":                    "service",
		"services":               "service",
		"cm":                     "configmap",
		"secrets":                "secret",
		"pvc":                    "persistentvolumeclaim",
		"PersistentVolumeClaims": "persistentvolumeclaim",
		"ing":                    "ingress",
		"ingresses":              "ingress",
		" Job ":                  "job",
		"widgets":                "widgets",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeKind(in), "NormalizeKind(%q)", in)
	}
}

func TestSupportedKinds(t *testing.T) {
	kinds := SupportedKinds()
	assert.Len(t, kinds, 8)
	assert.IsIncreasing(t, kinds)
}
