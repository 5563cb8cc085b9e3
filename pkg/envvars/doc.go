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

// Package envvars resolves the environment variables handed to a deployed
// application.
//
// Two sources are merged into one ordered list:
//
//  1. The application's .env file (KEY=VALUE per line), in file order.
//  2. Keys declared in the jac.toml manifest under environment.keys, whose
//     values are taken from the process environment, in declaration order.
//
// Duplicate names are kept from both sources; consumers decide precedence.
// Declared keys missing from the environment are skipped.
//
// Usage:
//
//	entries, err := envvars.Load("./app")
//
//	loader := envvars.NewLoader(envvars.WithLookup(func(k string) (string, bool) {
//	    return secrets[k], secrets[k] != ""
//	}))
//	entries, err = loader.Load("./app")
package envvars
