// Package lastfm is a minimal Last.fm web service client for album lookups.
package lastfm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/cesargomez89/sonicvault/internal/httpclient"
)

const DefaultUserAgent = "sonicvault/1.0"

// ErrNoCredential is returned when a lookup is attempted without an API key.
var ErrNoCredential = errors.New("lastfm: api key not configured")

// ClientInterface is implemented by Client and CachedClient.
type ClientInterface interface {
	GetAlbumInfo(ctx context.Context, apiKey, artist, title string) (*AlbumInfo, error)
}

var _ ClientInterface = (*Client)(nil)
var _ ClientInterface = (*CachedClient)(nil)

type Client struct {
	http      *httpclient.Client
	baseURL   string
	userAgent string
}

func NewClient(baseURL string, hc *httpclient.Client) *Client {
	return &Client{
		http:      hc,
		baseURL:   baseURL,
		userAgent: DefaultUserAgent,
	}
}

// GetAlbumInfo calls album.getinfo with autocorrect enabled. A nil result
// with a nil error means the service knows no such album.
func (c *Client) GetAlbumInfo(ctx context.Context, apiKey, artist, title string) (*AlbumInfo, error) {
	if apiKey == "" {
		return nil, ErrNoCredential
	}

	q := url.Values{}
	q.Set("method", "album.getinfo")
	q.Set("api_key", apiKey)
	q.Set("artist", artist)
	q.Set("album", title)
	q.Set("format", "json")
	q.Set("autocorrect", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var result albumInfoResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&result)

	// Last.fm reports lookup failures in the body, often with a 200.
	if decodeErr == nil && result.Error != 0 {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("lastfm returned status %d", resp.StatusCode)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("failed to decode response: %w", decodeErr)
	}
	if result.Album == nil {
		return nil, nil
	}

	return result.Album.toAlbumInfo(), nil
}
