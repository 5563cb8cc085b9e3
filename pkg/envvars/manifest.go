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

package envvars

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ManifestReader extracts the declared environment key names from a
// manifest file.
type ManifestReader interface {
	EnvKeys(path string) ([]string, error)
}

// TOMLManifest reads a string array at a dotted key path from a TOML file.
type TOMLManifest struct {
	KeyPath string
}

// NewTOMLManifest returns a reader for the given dotted key path,
// e.g. "environment.keys".
func NewTOMLManifest(keyPath string) *TOMLManifest {
	return &TOMLManifest{KeyPath: keyPath}
}

// EnvKeys returns the declared names in document order. A missing key path
// yields no names.
func (m *TOMLManifest) EnvKeys(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return m.parse(data)
}

func (m *TOMLManifest) parse(data []byte) ([]string, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode toml: %w", err)
	}

	var node any = doc
	for _, part := range strings.Split(m.KeyPath, ".") {
		table, ok := node.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%q: %q is not a table", m.KeyPath, part)
		}
		node, ok = table[part]
		if !ok {
			return nil, nil
		}
	}

	list, ok := node.([]any)
	if !ok {
		return nil, fmt.Errorf("%q must be an array of strings, got %T", m.KeyPath, node)
	}
	keys := make([]string, 0, len(list))
	for i, v := range list {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%q[%d] must be a string, got %T", m.KeyPath, i, v)
		}
		keys = append(keys, s)
	}
	return keys, nil
}
