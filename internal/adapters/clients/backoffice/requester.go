package backoffice

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/blackbird-voyages/ops-engine/internal/platform/httpclient"
)

// requester centralizes the HTTP request lifecycle for the catalog client:
// request creation, execution via httpclient.Client, response body cleanup,
// status code validation, error translation, and JSON decoding. The catalog
// is read-only, so only GET is supported.
type requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// get fetches path relative to the client's base URL, expects 200, and
// decodes the JSON response into respBody.
func (r *requester) get(ctx context.Context, path string, respBody any) error {
	url := r.client.BaseURL() + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating GET request for %s: %w", path, err)
	}

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		// httpclient.Do can return both resp and err when retries are
		// exhausted on a retryable status (e.g. 5xx). In that case,
		// translate the HTTP response into a domain error rather than
		// returning the raw retry error.
		if resp != nil {
			defer r.closeBody(ctx, resp)
			if resp.StatusCode != http.StatusOK {
				return TranslateHTTPError(resp)
			}
		}
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("method", http.MethodGet),
			slog.String("url", url),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer r.closeBody(ctx, resp)

	if resp.StatusCode != http.StatusOK {
		translateErr := TranslateHTTPError(resp)
		r.logger.ErrorContext(ctx, "unexpected status",
			slog.String("method", http.MethodGet),
			slog.String("url", url),
			slog.Int("status", resp.StatusCode),
		)
		return translateErr
	}

	if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
		return fmt.Errorf("decoding response from GET %s: %w", path, err)
	}
	return nil
}

// closeBody closes an HTTP response body and logs on failure.
func (r *requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}
