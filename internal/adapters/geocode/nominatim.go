package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"AccelMailBot/internal/domain/errorz"
	"AccelMailBot/internal/domain/repository"
)

const DefaultBaseURL = "https://nominatim.openstreetmap.org"

// Client resolves free-text place queries to coordinates through the
// OpenStreetMap Nominatim search API.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ repository.Geocoder = (*Client)(nil)

func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    http.DefaultClient,
	}
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Search returns the first hit's coordinates. An empty result set reports
// errorz.ErrNotFound so the caller can prompt for a different query.
func (c *Client) Search(ctx context.Context, query string) (float64, float64, error) {
	endpoint := fmt.Sprintf("%s/search?format=json&q=%s", c.baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("error building geocode request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("error geocoding %q: %w", query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("geocoder returned %d", resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return 0, 0, fmt.Errorf("error decoding geocode response: %w", err)
	}
	if len(results) == 0 {
		return 0, 0, errorz.ErrNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("error parsing latitude %q: %w", results[0].Lat, err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("error parsing longitude %q: %w", results[0].Lon, err)
	}
	return lat, lng, nil
}
