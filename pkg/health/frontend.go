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
	"mime"
	"net/http"
	"time"

	"github.com/NVIDIA/deploykit/pkg/errors"
)

const htmlMediaType = "text/html"

// CheckFrontend issues one GET against url and requires status 200 with an
// HTML content type.
func CheckFrontend(ctx context.Context, prober Prober, url string, timeout time.Duration) error {
	resp, err := prober.Get(ctx, url, timeout)
	if err != nil {
		return errors.WrapWithContext(errors.ErrCodeNetwork,
			"frontend unreachable", err, map[string]any{"url": url})
	}

	if resp.StatusCode != http.StatusOK {
		return errors.NewWithContext(errors.ErrCodeUnavailable,
			fmt.Sprintf("frontend returned status %d", resp.StatusCode),
			map[string]any{"url": url, "status": resp.StatusCode})
	}

	mediaType, _, err := mime.ParseMediaType(resp.ContentType)
	if err != nil || mediaType != htmlMediaType {
		return errors.NewWithContext(errors.ErrCodeUnavailable,
			fmt.Sprintf("frontend returned content type %q, want %s", resp.ContentType, htmlMediaType),
			map[string]any{"url": url, "contentType": resp.ContentType})
	}

	slog.Debug("frontend served html", "url", url)
	return nil
}
