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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/deploykit/pkg/health"
	"github.com/NVIDIA/deploykit/pkg/serializer"
)

// emitRoot returns a root carrying the global flags and one "emit" command
// that writes v through writeResult.
func emitRoot(out *bytes.Buffer, v any) *cli.Command {
	return &cli.Command{
		Name:   name,
		Flags:  globalFlags(),
		Writer: out,
		Commands: []*cli.Command{{
			Name: "emit",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return writeResult(ctx, cmd, v)
			},
		}},
	}
}

func TestParseOutputFormat_GlobalFlag(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		env     string
		want    serializer.Format
		wantErr bool
	}{
		{name: "default yaml", args: nil, want: serializer.FormatYAML},
		{name: "flag json", args: []string{"--format", "json"}, want: serializer.FormatJSON},
		{name: "alias table", args: []string{"-t", "table"}, want: serializer.FormatTable},
		{name: "env json", env: "json", want: serializer.FormatJSON},
		{name: "flag beats env", args: []string{"--format", "yaml"}, env: "json", want: serializer.FormatYAML},
		{name: "unsupported toml", args: []string{"--format", "toml"}, wantErr: true},
		{name: "empty", args: []string{"--format", ""}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.env != "" {
				t.Setenv("DEPLOYCTL_FORMAT", tt.env)
			} else {
				t.Setenv("DEPLOYCTL_FORMAT", "")
				require.NoError(t, os.Unsetenv("DEPLOYCTL_FORMAT"))
			}

			var got serializer.Format
			var gotErr error
			root := &cli.Command{
				Name:  name,
				Flags: globalFlags(),
				Commands: []*cli.Command{{
					Name: "format-check",
					Action: func(_ context.Context, cmd *cli.Command) error {
						got, gotErr = parseOutputFormat(cmd)
						return nil
					},
				}},
			}

			args := append([]string{name}, tt.args...)
			require.NoError(t, root.Run(context.Background(), append(args, "format-check")))
			if tt.wantErr {
				assert.Error(t, gotErr)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteResult_RootWriter(t *testing.T) {
	var out bytes.Buffer
	err := emitRoot(&out, map[string]string{"provider": "aws"}).
		Run(context.Background(), []string{name, "--format", "json", "emit"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"provider":"aws"}`, out.String())
}

func TestWriteResult_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.yaml")

	var out bytes.Buffer
	err := emitRoot(&out, map[string]string{"provider": "gcp"}).
		Run(context.Background(), []string{name, "--output", path, "emit"})
	require.NoError(t, err)
	assert.Empty(t, out.String(), "nothing goes to the root writer when --output is set")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "provider: gcp\n", string(data))
}

func TestWriteResult_OutputFileUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "result.json")

	var out bytes.Buffer
	err := emitRoot(&out, map[string]string{}).
		Run(context.Background(), []string{name, "--output", path, "emit"})
	assert.Error(t, err)
}

func TestWriteResult_HealthReportTable(t *testing.T) {
	report := healthReport{
		{URL: "http://localhost:30080/healthz", State: health.StateSucceeded, Attempts: 1},
		{URL: "http://localhost:30080/ready", State: health.StateExhausted, Attempts: 30},
	}

	var out bytes.Buffer
	err := emitRoot(&out, report).Run(context.Background(), []string{name, "--format", "table", "emit"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"URL", "STATE", "ATTEMPTS"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"http://localhost:30080/healthz", "succeeded", "1"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"http://localhost:30080/ready", "exhausted", "30"}, strings.Fields(lines[2]))
}
