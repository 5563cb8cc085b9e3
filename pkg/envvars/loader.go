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
	"log/slog"
	"os"
	"path/filepath"

	"github.com/NVIDIA/deploykit/pkg/defaults"
)

// Entry is a single resolved variable.
type Entry struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// LookupFunc returns the value of a process environment variable and
// whether it is set. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// Loader resolves entries for an application directory.
type Loader struct {
	lookup       LookupFunc
	manifest     ManifestReader
	envFile      string
	manifestFile string
}

// Option configures a Loader.
type Option func(*Loader)

// WithLookup replaces the process environment lookup.
func WithLookup(fn LookupFunc) Option {
	return func(l *Loader) {
		if fn != nil {
			l.lookup = fn
		}
	}
}

// WithManifestReader replaces the jac.toml reader.
func WithManifestReader(r ManifestReader) Option {
	return func(l *Loader) {
		if r != nil {
			l.manifest = r
		}
	}
}

// WithFileNames overrides the env and manifest file names looked up inside
// the application directory. Empty values keep the defaults.
func WithFileNames(envFile, manifestFile string) Option {
	return func(l *Loader) {
		if envFile != "" {
			l.envFile = envFile
		}
		if manifestFile != "" {
			l.manifestFile = manifestFile
		}
	}
}

// NewLoader returns a Loader reading .env and jac.toml with the process
// environment as the lookup.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		lookup:       os.LookupEnv,
		manifest:     NewTOMLManifest(defaults.ManifestEnvKeyPath),
		envFile:      defaults.EnvFileName,
		manifestFile: defaults.ManifestFileName,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load resolves entries for appDir using the default Loader.
func Load(appDir string) ([]Entry, error) {
	return NewLoader().Load(appDir)
}

// Load returns the env file entries followed by the declared process
// environment entries. Missing files contribute nothing.
func (l *Loader) Load(appDir string) ([]Entry, error) {
	entries, err := l.fileEntries(filepath.Join(appDir, l.envFile))
	if err != nil {
		return nil, err
	}

	declared, err := l.declaredEntries(filepath.Join(appDir, l.manifestFile))
	if err != nil {
		return nil, err
	}

	return append(entries, declared...), nil
}

func (l *Loader) fileEntries(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("env file not found, skipping", "path", path)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open env file %s: %w", path, err)
	}
	defer f.Close()

	entries, err := ParseEnvFile(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse env file %s: %w", path, err)
	}
	slog.Debug("loaded env file", "path", path, "entries", len(entries))
	return entries, nil
}

func (l *Loader) declaredEntries(path string) ([]Entry, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			slog.Debug("manifest not found, skipping", "path", path)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to stat manifest %s: %w", path, err)
	}

	keys, err := l.manifest.EnvKeys(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		value, ok := l.lookup(key)
		if !ok {
			slog.Debug("declared env key not set, skipping", "key", key)
			continue
		}
		entries = append(entries, Entry{Name: key, Value: value})
	}
	return entries, nil
}
