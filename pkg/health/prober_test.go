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
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/deploykit/pkg/errors"
)

func TestHTTPProber_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte("<html></html>"))
		case "/slow":
			time.Sleep(200 * time.Millisecond)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	p := NewHTTPProber()

	resp, err := p.Get(context.Background(), srv.URL+"/ok", time.Second)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.ContentType)

	resp, err = p.Get(context.Background(), srv.URL+"/missing", time.Second)
	require.NoError(t, err, "HTTP errors are responses, not failures")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	_, err = p.Get(context.Background(), srv.URL+"/slow", 20*time.Millisecond)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNetwork, errors.CodeOf(err))
}

func TestHTTPProber_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPProber().Get(context.Background(), url, time.Second)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNetwork, errors.CodeOf(err))
}

func TestHTTPProber_InvalidURL(t *testing.T) {
	_, err := NewHTTPProberWithClient(http.DefaultClient).Get(context.Background(), "://bad", time.Second)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
}

func TestCheckFrontend(t *testing.T) {
	tests := []struct {
		name     string
		resp     *Response
		err      error
		wantCode errors.ErrorCode
	}{
		{name: "html", resp: &Response{StatusCode: 200, ContentType: "text/html"}},
		{name: "html with charset", resp: &Response{StatusCode: 200, ContentType: "text/html; charset=utf-8"}},
		{name: "uppercase media type", resp: &Response{StatusCode: 200, ContentType: "Text/HTML"}},
		{name: "json", resp: &Response{StatusCode: 200, ContentType: "application/json"}, wantCode: errors.ErrCodeUnavailable},
		{name: "missing content type", resp: &Response{StatusCode: 200}, wantCode: errors.ErrCodeUnavailable},
		{name: "server error", resp: &Response{StatusCode: 500, ContentType: "text/html"}, wantCode: errors.ErrCodeUnavailable},
		{name: "not modified", resp: &Response{StatusCode: 304, ContentType: "text/html"}, wantCode: errors.ErrCodeUnavailable},
		{name: "unreachable", err: stderrors.New("dial tcp: connection refused"), wantCode: errors.ErrCodeNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prober := ProberFunc(func(context.Context, string, time.Duration) (*Response, error) {
				return tt.resp, tt.err
			})

			err := CheckFrontend(context.Background(), prober, "http://localhost:8000/", time.Second)
			if tt.wantCode == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.CodeOf(err))
		})
	}
}

func TestCheckFrontend_HTTPServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<!doctype html><title>todo</title>"))
	}))
	defer srv.Close()

	require.NoError(t, CheckFrontend(context.Background(), NewHTTPProber(), srv.URL, time.Second))
}
