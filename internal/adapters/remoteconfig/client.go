package remoteconfig

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"AccelMailBot/internal/domain/repository"
	"AccelMailBot/internal/domain/schema"
)

// Client fetches the spreadsheet-backed configuration endpoint: mailer-size
// catalog, one-time design fee and blackout calendar dates. Callers fall
// back to schema.FallbackRemoteConfig when a fetch fails.
type Client struct {
	scriptURL string
	http      *http.Client
}

var _ repository.ConfigFetcher = (*Client)(nil)

func New(scriptURL string) *Client {
	return &Client{
		scriptURL: scriptURL,
		http:      http.DefaultClient,
	}
}

func (c *Client) Fetch(ctx context.Context) (schema.RemoteConfig, error) {
	if c.scriptURL == "" {
		return schema.RemoteConfig{}, fmt.Errorf("no config endpoint configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.scriptURL+"?route=config", nil)
	if err != nil {
		return schema.RemoteConfig{}, fmt.Errorf("error building config request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return schema.RemoteConfig{}, fmt.Errorf("error fetching config: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return schema.RemoteConfig{}, fmt.Errorf("config endpoint returned %d", resp.StatusCode)
	}

	var cfg schema.RemoteConfig
	if err := json.NewDecoder(resp.Body).Decode(&cfg); err != nil {
		return schema.RemoteConfig{}, fmt.Errorf("error decoding config: %w", err)
	}
	return cfg, nil
}
