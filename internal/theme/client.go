package theme

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client pushes a locally chosen theme to the Sync Endpoint of a running site.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a Client for the site at baseURL. A nil hc uses
// http.DefaultClient.
func NewClient(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// Sync posts t to /api/theme and returns the cookie value the server set.
func (c *Client) Sync(ctx context.Context, t Theme) (Theme, error) {
	body, err := json.Marshal(SyncRequest{Theme: string(t)})
	if err != nil {
		return "", fmt.Errorf("encode sync request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/theme", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build sync request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("sync theme: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		var eb errorBody
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxSyncBody))
		if json.Unmarshal(data, &eb) == nil && eb.Error != "" {
			return "", fmt.Errorf("sync theme: %s: %s", resp.Status, eb.Error)
		}
		return "", fmt.Errorf("sync theme: %s", resp.Status)
	}

	for _, ck := range resp.Cookies() {
		if ck.Name == CookieName {
			return Theme(ck.Value), nil
		}
	}
	return "", fmt.Errorf("sync theme: response set no %s cookie", CookieName)
}
