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
	"io"
	"net"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/NVIDIA/deploykit/pkg/defaults"
	"github.com/NVIDIA/deploykit/pkg/errors"
)

// maxDrainBytes bounds how much of a response body is read before closing,
// so keep-alive connections can be reused.
const maxDrainBytes = 1 << 20

// Response is the part of an HTTP response the checks inspect.
type Response struct {
	StatusCode  int
	ContentType string
}

// Prober issues a GET bounded by timeout. Transport failures are returned
// as NETWORK errors; any HTTP status is a Response.
type Prober interface {
	Get(ctx context.Context, url string, timeout time.Duration) (*Response, error)
}

// ProberFunc adapts a function to Prober.
type ProberFunc func(ctx context.Context, url string, timeout time.Duration) (*Response, error)

// Get implements Prober.
func (f ProberFunc) Get(ctx context.Context, url string, timeout time.Duration) (*Response, error) {
	return f(ctx, url, timeout)
}

// HTTPProber probes over a pooled HTTP client.
type HTTPProber struct {
	client *http.Client
}

// NewHTTPProber returns a prober with connection timeouts from pkg/defaults.
func NewHTTPProber() *HTTPProber {
	transport := cleanhttp.DefaultPooledTransport()
	transport.DialContext = (&net.Dialer{
		Timeout:   defaults.HTTPConnectTimeout,
		KeepAlive: defaults.HTTPKeepAlive,
	}).DialContext
	transport.TLSHandshakeTimeout = defaults.HTTPTLSHandshakeTimeout
	transport.IdleConnTimeout = defaults.HTTPIdleConnTimeout

	return &HTTPProber{client: &http.Client{Transport: transport}}
}

// NewHTTPProberWithClient returns a prober using client.
func NewHTTPProberWithClient(client *http.Client) *HTTPProber {
	return &HTTPProber{client: client}
}

// Get implements Prober.
func (p *HTTPProber) Get(ctx context.Context, url string, timeout time.Duration) (*Response, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			"invalid probe url", err, map[string]any{"url": url})
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeNetwork,
			"probe request failed", err, map[string]any{"url": url})
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))

	return &Response{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
