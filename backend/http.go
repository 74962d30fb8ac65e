package backend

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"
)

// HTTPBackend posts the payload to an endpoint exposed as a plain URL.
type HTTPBackend struct {
	httpClient *http.Client
}

// NewHTTPBackend creates an HTTPBackend. A zero timeout leaves the request bounded only by ctx.
func NewHTTPBackend(timeout time.Duration) *HTTPBackend {
	return &HTTPBackend{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Invoke sends body to the endpoint URL and returns the full response body.
func (c *HTTPBackend) Invoke(ctx context.Context, endpoint, contentType string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Debugf("Endpoint %s answered %s", endpoint, resp.Status)
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status, Body: respBody}
	}
	return respBody, nil
}
