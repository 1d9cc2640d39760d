// Package tagger forwards captured leads to the email-marketing platform's
// tag-subscribe endpoint so they land in the right campaign segment.
package tagger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Subscription is the reduced lead subset the tagging service receives.
type Subscription struct {
	Email     string
	FirstName string
	Whatsapp  string
}

type Client interface {
	// Configured reports whether the service credentials are present.
	// Callers skip tagging entirely when they are not.
	Configured() bool
	Tag(ctx context.Context, sub Subscription) error
}

type HTTPClient struct {
	baseURL    string
	apiKey     string
	tagID      string
	httpClient *http.Client
}

func NewHTTPClient(baseURL, apiKey, tagID string) *HTTPClient {
	return &HTTPClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		tagID:      tagID,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *HTTPClient) Configured() bool {
	return c.apiKey != "" && c.tagID != ""
}

type tagRequest struct {
	APIKey    string    `json:"api_key"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	Fields    tagFields `json:"fields"`
}

type tagFields struct {
	Whatsapp string `json:"whatsapp"`
}

// Tag subscribes the contact to the configured tag. A non-2xx response is an
// error carrying the status and body; callers log it and move on.
func (c *HTTPClient) Tag(ctx context.Context, sub Subscription) error {
	payload, err := json.Marshal(tagRequest{
		APIKey:    c.apiKey,
		Email:     sub.Email,
		FirstName: sub.FirstName,
		Fields:    tagFields{Whatsapp: sub.Whatsapp},
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/v3/tags/%s/subscribe", c.baseURL, c.tagID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
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
		return fmt.Errorf("tag subscribe: %d %s", resp.StatusCode, string(body))
	}
	return nil
}
