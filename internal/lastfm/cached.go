package lastfm

import (
	"context"
	"encoding/json"
	"strings"
	"time"
)

type Cache interface {
	GetCache(key string) ([]byte, error)
	SetCache(key string, data []byte, ttl time.Duration) error
}

// CachedClient memoizes album lookups, including misses. Errors are never cached.
type CachedClient struct {
	client ClientInterface
	cache  Cache
	ttl    time.Duration
}

func NewCachedClient(client ClientInterface, cache Cache, ttl time.Duration) *CachedClient {
	return &CachedClient{
		client: client,
		cache:  cache,
		ttl:    ttl,
	}
}

type cachedAlbum struct {
	Info     *AlbumInfo `json:"info"`
	NotFound bool       `json:"not_found"`
}

func (c *CachedClient) GetAlbumInfo(ctx context.Context, apiKey, artist, title string) (*AlbumInfo, error) {
	if apiKey == "" {
		return nil, ErrNoCredential
	}

	cacheKey := albumCacheKey(artist, title)

	data, err := c.cache.GetCache(cacheKey)
	if err != nil {
		return nil, err
	}

	if data != nil {
		var cached cachedAlbum
		if unmarshalErr := json.Unmarshal(data, &cached); unmarshalErr == nil {
			return cached.Info, nil
		}
	}

	info, err := c.client.GetAlbumInfo(ctx, apiKey, artist, title)
	if err != nil {
		return nil, err
	}

	cached := cachedAlbum{Info: info, NotFound: info == nil}
	if data, marshalErr := json.Marshal(cached); marshalErr == nil {
		_ = c.cache.SetCache(cacheKey, data, c.ttl)
	}

	return info, nil
}

func albumCacheKey(artist, title string) string {
	return "lastfm:album:" + strings.ToLower(artist) + "\x1f" + strings.ToLower(title)
}
