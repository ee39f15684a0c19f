package domain

import (
	"net/url"
	"strings"

	"github.com/cesargomez89/sonicvault/internal/constants"
)

// Links are the external pages for an album, manual overrides first.
type Links struct {
	Spotify string `json:"spotify"`
	Review  string `json:"review"`
	RYM     string `json:"rym"`
}

// SpotifyLink returns the manual override or a Spotify search URL.
func (a *Album) SpotifyLink() string {
	if a.SpotifyURL != "" {
		return a.SpotifyURL
	}
	return constants.SpotifySearchURL + url.PathEscape(a.Artist+" "+a.Title)
}

// ReviewLink returns the manual override or a web search for reviews.
func (a *Album) ReviewLink() string {
	if a.ReviewURL != "" {
		return a.ReviewURL
	}
	q := url.Values{}
	q.Set("q", a.Artist+" "+a.Title+" review")
	return constants.ReviewSearchURL + "?" + encodeQuery(q)
}

// RYMLink returns the manual override or a RateYourMusic release search.
func (a *Album) RYMLink() string {
	if a.RYMURL != "" {
		return a.RYMURL
	}
	q := url.Values{}
	q.Set("searchterm", a.Artist+" "+a.Title)
	q.Set("searchtype", "l")
	return constants.RYMSearchURL + "?" + encodeQuery(q)
}

// Links bundles the three external links.
func (a *Album) Links() Links {
	return Links{
		Spotify: a.SpotifyLink(),
		Review:  a.ReviewLink(),
		RYM:     a.RYMLink(),
	}
}

// encodeQuery encodes spaces as %20 rather than '+'.
func encodeQuery(v url.Values) string {
	return strings.ReplaceAll(v.Encode(), "+", "%20")
}
