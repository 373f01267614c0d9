// Package quotes fetches a motivational quote for the statistics
// screen. Purely decorative: any failure means the screen shows nothing.
package quotes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// DefaultEndpoint returns a JSON array of quotes.
const DefaultEndpoint = "https://zenquotes.io/api/random"

// Quote is one entry of the endpoint's response.
type Quote struct {
	Text   string `json:"q"`
	Author string `json:"a"`
}

// Client fetches quotes over HTTP.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a Client for endpoint, falling back to
// DefaultEndpoint when empty.
func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Random fetches one quote.
func (c *Client) Random(ctx context.Context) (Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return Quote{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Quote{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Quote{}, fmt.Errorf("quote fetch: unexpected status %s", resp.Status)
	}

	var quotes []Quote
	if err := json.NewDecoder(resp.Body).Decode(&quotes); err != nil {
		return Quote{}, fmt.Errorf("quote fetch: decode: %w", err)
	}
	if len(quotes) == 0 {
		return Quote{}, errors.New("quote fetch: empty response")
	}
	return quotes[0], nil
}
