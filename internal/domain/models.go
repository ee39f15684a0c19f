package domain

import (
	"strings"
)

// Album is one catalog entry. ID is assigned at creation and never reused.
type Album struct {
	ID        string   `json:"id"`
	Artist    string   `json:"artist"`
	Title     string   `json:"title"`
	Rating    *float64 `json:"rating"` // nil means unrated, which is not the same as 0
	Ownership string   `json:"ownership"`
	Year      string   `json:"year"`
	Tags      []string `json:"tags"`

	// Enrichment fields; once set they are never cleared.
	CoverURL    string `json:"cover_url,omitempty"`
	Description string `json:"description,omitempty"`
	Listeners   string `json:"listeners,omitempty"`
	Playcount   string `json:"playcount,omitempty"`

	// Manual link overrides; when empty the links are synthesized from artist and title.
	SpotifyURL string `json:"spotify_url,omitempty"`
	ReviewURL  string `json:"review_url,omitempty"`
	RYMURL     string `json:"rym_url,omitempty"`
}

// HasRating reports whether the album carries a rating.
func (a *Album) HasRating() bool {
	return a.Rating != nil
}

// RatingValue returns the rating, or 0 when unrated. Only for comparisons.
func (a *Album) RatingValue() float64 {
	if a.Rating == nil {
		return 0
	}
	return *a.Rating
}

// FullyEnriched reports whether both cover art and description are present.
func (a *Album) FullyEnriched() bool {
	return a.CoverURL != "" && a.Description != ""
}

// NeedsEnrichment is the candidate-set predicate of the enrichment pipeline.
func (a *Album) NeedsEnrichment() bool {
	return !a.FullyEnriched()
}

// HasTag reports whether the exact tag string is present.
func (a *Album) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers never alias store internals.
func (a Album) Clone() Album {
	if a.Rating != nil {
		r := *a.Rating
		a.Rating = &r
	}
	if a.Tags != nil {
		a.Tags = append([]string(nil), a.Tags...)
	} else {
		a.Tags = []string{}
	}
	return a
}

// Normalize makes sure no display field is missing.
func (a *Album) Normalize() {
	if a.Tags == nil {
		a.Tags = []string{}
	}
	a.Artist = strings.TrimSpace(a.Artist)
	a.Title = strings.TrimSpace(a.Title)
}

// Float returns a pointer to v, for building ratings and patches.
func Float(v float64) *float64 {
	return &v
}

// String returns a pointer to v.
func String(v string) *string {
	return &v
}
