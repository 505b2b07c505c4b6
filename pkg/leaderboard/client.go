package leaderboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// TopScoreWindow is how many entries IsTopScore compares against.
const TopScoreWindow = 10

// Client talks to a leaderboard server. Every call is best-effort: failures
// come back as false or an empty list and never as errors.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the server at baseURL. A nil httpClient
// gets one with a 5 second timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// SubmitScore posts name and height and reports whether the server accepted it.
func (c *Client) SubmitScore(ctx context.Context, name string, height int) bool {
	body, err := json.Marshal(map[string]any{
		"name":   strings.TrimSpace(name),
		"height": height,
	})
	if err != nil {
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+PathLeaderboard, bytes.NewReader(body))
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// TopScores fetches up to limit entries. Any failure yields an empty list.
func (c *Client) TopScores(ctx context.Context, limit int) []Entry {
	entries, err := c.fetchTop(ctx, limit)
	if err != nil {
		return []Entry{}
	}
	return entries
}

func (c *Client) fetchTop(ctx context.Context, limit int) ([]Entry, error) {
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+PathLeaderboard+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("leaderboard returned %s", resp.Status)
	}

	var entries []Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode leaderboard: %w", err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

// IsTopScore reports whether height would beat the last of the current top
// entries. An empty or unreachable board counts as a top score.
func (c *Client) IsTopScore(ctx context.Context, height int) bool {
	scores := c.TopScores(ctx, TopScoreWindow)
	return len(scores) == 0 || height > scores[len(scores)-1].Height
}
