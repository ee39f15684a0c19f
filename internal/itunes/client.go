// Package itunes looks up album artwork through the iTunes Search API.
package itunes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/cesargomez89/sonicvault/internal/constants"
	"github.com/cesargomez89/sonicvault/internal/httpclient"
)

type Client struct {
	http    *httpclient.Client
	baseURL string
}

func NewClient(baseURL string, hc *httpclient.Client) *Client {
	return &Client{
		http:    hc,
		baseURL: baseURL,
	}
}

type searchResponse struct {
	ResultCount int `json:"resultCount"`
	Results     []struct {
		CollectionName string `json:"collectionName"`
		ArtistName     string `json:"artistName"`
		ArtworkURL100  string `json:"artworkUrl100"`
	} `json:"results"`
}

// SearchArtwork returns a high resolution artwork URL for the top album
// match of term, or "" when nothing usable comes back.
func (c *Client) SearchArtwork(ctx context.Context, term string) (string, error) {
	q := url.Values{}
	q.Set("term", term)
	q.Set("entity", "album")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("itunes returned status %d", resp.StatusCode)
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Results) == 0 {
		return "", nil
	}

	return UpgradeArtwork(result.Results[0].ArtworkURL100), nil
}

// UpgradeArtwork swaps the thumbnail size token for the large one.
// Blank or non-http references yield "".
func UpgradeArtwork(ref string) string {
	ref = strings.TrimSpace(ref)
	u, err := url.Parse(ref)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ""
	}
	return strings.Replace(ref, constants.ITunesThumbToken, constants.ITunesLargeToken, 1)
}
