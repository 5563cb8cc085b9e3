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

package health

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"k8s.io/utils/clock"

	"github.com/NVIDIA/deploykit/pkg/defaults"
)

// State is a poll state.
type State string

const (
	StateWaiting    State = "waiting"
	StateAttempting State = "attempting"
	StateSucceeded  State = "succeeded"
	StateExhausted  State = "exhausted"
)

// Target is the endpoint probed by the poller.
type Target struct {
	Host     string `json:"host" yaml:"host"`
	NodePort int    `json:"nodePort" yaml:"nodePort"`
	Path     string `json:"path" yaml:"path"`
}

// URL returns http://<host>:<nodePort><path>. An empty host means
// localhost and a path without a leading slash gets one.
func (t Target) URL() string {
	host := t.Host
	if host == "" {
		host = defaults.HealthProbeHost
	}
	path := t.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(t.NodePort)) + path
}

// Policy bounds a poll. The worst case duration is
// InitialWait + (MaxRetries-1)*Interval + MaxRetries*ProbeTimeout.
type Policy struct {
	InitialWait  time.Duration `json:"initialWait" yaml:"initialWait"`
	Interval     time.Duration `json:"interval" yaml:"interval"`
	MaxRetries   int           `json:"maxRetries" yaml:"maxRetries"`
	ProbeTimeout time.Duration `json:"probeTimeout,omitempty" yaml:"probeTimeout,omitempty"`
}

// DefaultPolicy returns the policy built from pkg/defaults.
func DefaultPolicy() Policy {
	return Policy{
		InitialWait:  defaults.HealthInitialWait,
		Interval:     defaults.HealthPollInterval,
		MaxRetries:   defaults.HealthMaxRetries,
		ProbeTimeout: defaults.HealthProbeTimeout,
	}
}

// Result is the terminal state of a poll and the number of probes issued.
type Result struct {
	URL      string `json:"url" yaml:"url"`
	State    State  `json:"state" yaml:"state"`
	Attempts int    `json:"attempts" yaml:"attempts"`
}

// Healthy reports whether the poll succeeded.
func (r Result) Healthy() bool {
	return r.State == StateSucceeded
}

// Poller polls a Target until it answers 200 or the policy is exhausted.
type Poller struct {
	prober Prober
	clock  clock.Clock
}

// Option configures a Poller.
type Option func(*Poller)

// WithClock replaces the real clock, typically with a fake in tests.
func WithClock(c clock.Clock) Option {
	return func(p *Poller) {
		if c != nil {
			p.clock = c
		}
	}
}

// NewPoller returns a Poller using prober and the real clock. A nil prober
// means NewHTTPProber.
func NewPoller(prober Prober, opts ...Option) *Poller {
	if prober == nil {
		prober = NewHTTPProber()
	}
	p := &Poller{
		prober: prober,
		clock:  clock.RealClock{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// CheckDeploymentStatus reports whether target became healthy within policy.
func (p *Poller) CheckDeploymentStatus(ctx context.Context, target Target, policy Policy) bool {
	return p.Poll(ctx, target, policy).Healthy()
}

// Poll runs the state machine to a terminal state. It never returns an
// error; a cancelled context ends the poll as Exhausted.
func (p *Poller) Poll(ctx context.Context, target Target, policy Policy) Result {
	start := p.clock.Now()
	res := p.run(ctx, target, policy)

	pollDuration.Observe(p.clock.Since(start).Seconds())
	pollsTotal.WithLabelValues(string(res.State)).Inc()
	slog.Info("health poll finished",
		"url", res.URL,
		"state", res.State,
		"attempts", res.Attempts,
		"maxRetries", policy.MaxRetries)
	return res
}

func (p *Poller) run(ctx context.Context, target Target, policy Policy) Result {
	res := Result{URL: target.URL(), State: StateAttempting}
	if policy.MaxRetries <= 0 || ctx.Err() != nil {
		res.State = StateExhausted
		return res
	}

	timeout := policy.ProbeTimeout
	if timeout <= 0 {
		timeout = defaults.HealthProbeTimeout
	}

	if policy.InitialWait > 0 {
		res.State = StateWaiting
		if !p.sleep(ctx, policy.InitialWait) {
			res.State = StateExhausted
			return res
		}
		res.State = StateAttempting
	}

	for {
		res.Attempts++
		if p.attempt(ctx, res.URL, timeout, res.Attempts) {
			res.State = StateSucceeded
			return res
		}
		if res.Attempts >= policy.MaxRetries {
			res.State = StateExhausted
			return res
		}
		if !p.sleep(ctx, policy.Interval) {
			res.State = StateExhausted
			return res
		}
	}
}

func (p *Poller) attempt(ctx context.Context, url string, timeout time.Duration, n int) bool {
	resp, err := p.prober.Get(ctx, url, timeout)
	if err != nil {
		slog.Debug("health probe failed", "url", url, "attempt", n, "error", err)
		probeAttempts.WithLabelValues("network").Inc()
		return false
	}
	if resp == nil {
		slog.Debug("health probe returned no response", "url", url, "attempt", n)
		probeAttempts.WithLabelValues("empty").Inc()
		return false
	}
	if resp.StatusCode != http.StatusOK {
		slog.Debug("health probe unhealthy", "url", url, "attempt", n, "status", resp.StatusCode)
		probeAttempts.WithLabelValues("status").Inc()
		return false
	}
	probeAttempts.WithLabelValues("success").Inc()
	return true
}

// sleep waits d on the poller clock. It returns false if ctx ends first.
func (p *Poller) sleep(ctx context.Context, d time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}
	if d <= 0 {
		return true
	}
	t := p.clock.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C():
		return true
	case <-ctx.Done():
		return false
	}
}

// String implements fmt.Stringer.
func (r Result) String() string {
	return fmt.Sprintf("%s %s after %d attempt(s)", r.URL, r.State, r.Attempts)
}
