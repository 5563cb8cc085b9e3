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

// Package health confirms that a deployed application answers over HTTP.
//
// # Poller
//
// Poller probes http://<host>:<nodePort><path> on a bounded schedule:
//
//	Waiting --(initial wait)--> Attempting --200--> Succeeded
//	                              |  ^
//	                  non-200 or  |  | interval
//	                  network err v  |
//	                            (retries left?) --no--> Exhausted
//
// Only status 200 counts as healthy. Network failures are failed attempts,
// never errors. The poller sleeps on an injected k8s.io/utils/clock.Clock
// so tests can drive time with a fake clock:
//
//	p := health.NewPoller(health.NewHTTPProber())
//	ok := p.CheckDeploymentStatus(ctx,
//	    health.Target{Host: "localhost", NodePort: 30080, Path: "/healthz"},
//	    health.Policy{InitialWait: 5 * time.Second, Interval: 10 * time.Second, MaxRetries: 30})
//
// A poller holds no per-call state and may be shared across goroutines.
//
// # Frontend check
//
// CheckFrontend is a single GET that additionally requires an HTML
// response, for confirming a web client is being served.
package health
