// Package submit posts completed leads to the ingestion endpoint. Callers
// treat failure as best-effort telemetry: the session runner logs and moves
// on.
package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/somosintegros/diagnostico/internal/lead"
)

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Submit posts the lead payload to POST /api/leads. A non-2xx response is an
// error carrying the status and body.
func (c *HTTPClient) Submit(ctx context.Context, s lead.Submission) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal lead: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/leads", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("submit lead: %d %s", resp.StatusCode, string(body))
	}
	return nil
}
