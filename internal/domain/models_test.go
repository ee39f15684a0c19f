package domain

import (
	"strings"
	"testing"
)

func TestAlbum_RatingValue(t *testing.T) {
	tests := []struct {
		name   string
		rating *float64
		want   float64
		rated  bool
	}{
		{"unrated", nil, 0, false},
		{"zero is a rating", Float(0), 0, true},
		{"half stars", Float(3.5), 3.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Album{Rating: tt.rating}
			if got := a.RatingValue(); got != tt.want {
				t.Errorf("RatingValue() = %v, want %v", got, tt.want)
			}
			if got := a.HasRating(); got != tt.rated {
				t.Errorf("HasRating() = %v, want %v", got, tt.rated)
			}
		})
	}
}

func TestAlbum_NeedsEnrichment(t *testing.T) {
	tests := []struct {
		name  string
		album Album
		want  bool
	}{
		{"nothing fetched", Album{}, true},
		{"cover only", Album{CoverURL: "c"}, true},
		{"description only", Album{Description: "d"}, true},
		{"fully enriched", Album{CoverURL: "c", Description: "d"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.album.NeedsEnrichment(); got != tt.want {
				t.Errorf("NeedsEnrichment() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAlbum_Clone(t *testing.T) {
	orig := Album{ID: "1", Rating: Float(4), Tags: []string{"rock"}}
	c := orig.Clone()

	*c.Rating = 1
	c.Tags[0] = "pop"

	if *orig.Rating != 4 {
		t.Errorf("clone shares rating pointer")
	}
	if orig.Tags[0] != "rock" {
		t.Errorf("clone shares tag slice")
	}

	empty := Album{}.Clone()
	if empty.Tags == nil {
		t.Error("clone should never carry nil tags")
	}
}

func TestAlbum_HasTag(t *testing.T) {
	a := Album{Tags: []string{"shoegaze", "k-indie"}}
	if !a.HasTag("shoegaze") {
		t.Error("expected exact tag match")
	}
	if a.HasTag("Shoegaze") {
		t.Error("tag match must be exact")
	}
}

func TestAlbumPatch_Apply(t *testing.T) {
	t.Run("set fields win and others are kept", func(t *testing.T) {
		a := Album{Artist: "A", Title: "T", CoverURL: "old", Tags: []string{"x"}}
		p := AlbumPatch{Description: String("desc"), Listeners: String("10")}
		p.Apply(&a)

		if a.Description != "desc" || a.Listeners != "10" {
			t.Errorf("patch not applied: %+v", a)
		}
		if a.CoverURL != "old" || a.Artist != "A" || len(a.Tags) != 1 {
			t.Errorf("untouched fields changed: %+v", a)
		}
	})

	t.Run("empty enrichment values never clear", func(t *testing.T) {
		a := Album{CoverURL: "keep", Description: "keep"}
		p := AlbumPatch{CoverURL: String(""), Description: String("")}
		p.Apply(&a)

		if a.CoverURL != "keep" || a.Description != "keep" {
			t.Errorf("enrichment field cleared: %+v", a)
		}
	})

	t.Run("manual link overrides can be cleared", func(t *testing.T) {
		a := Album{SpotifyURL: "https://example.com"}
		p := AlbumPatch{SpotifyURL: String("")}
		p.Apply(&a)

		if a.SpotifyURL != "" {
			t.Errorf("SpotifyURL = %q, want empty", a.SpotifyURL)
		}
	})

	t.Run("rating set and clear", func(t *testing.T) {
		a := Album{}
		(&AlbumPatch{Rating: Float(4.5)}).Apply(&a)
		if a.Rating == nil || *a.Rating != 4.5 {
			t.Fatalf("rating not set: %v", a.Rating)
		}
		(&AlbumPatch{ClearRating: true}).Apply(&a)
		if a.Rating != nil {
			t.Errorf("rating not cleared: %v", *a.Rating)
		}
	})

	t.Run("tags nil untouched, empty clears", func(t *testing.T) {
		a := Album{Tags: []string{"a", "b"}}
		(&AlbumPatch{}).Apply(&a)
		if len(a.Tags) != 2 {
			t.Errorf("nil tags patch changed tags: %v", a.Tags)
		}
		(&AlbumPatch{Tags: []string{}}).Apply(&a)
		if len(a.Tags) != 0 {
			t.Errorf("empty tags patch did not clear: %v", a.Tags)
		}
	})
}

func TestAlbumPatch_IsEmpty(t *testing.T) {
	if !(&AlbumPatch{}).IsEmpty() {
		t.Error("zero patch should be empty")
	}
	if (&AlbumPatch{ClearRating: true}).IsEmpty() {
		t.Error("ClearRating patch is not empty")
	}
	if (&AlbumPatch{Tags: []string{}}).IsEmpty() {
		t.Error("tag-clearing patch is not empty")
	}
}

func TestAlbum_Links(t *testing.T) {
	a := Album{Artist: "Radiohead", Title: "OK Computer"}
	links := a.Links()

	if links.Spotify != "https://open.spotify.com/search/Radiohead%20OK%20Computer" {
		t.Errorf("Spotify = %q", links.Spotify)
	}
	if !strings.HasPrefix(links.Review, "https://www.google.com/search?q=") ||
		!strings.Contains(links.Review, "OK%20Computer%20review") {
		t.Errorf("Review = %q", links.Review)
	}
	if !strings.Contains(links.RYM, "searchterm=Radiohead%20OK%20Computer") ||
		!strings.Contains(links.RYM, "searchtype=l") {
		t.Errorf("RYM = %q", links.RYM)
	}

	a.RYMURL = "https://rateyourmusic.com/release/album/radiohead/ok-computer/"
	if a.RYMLink() != a.RYMURL {
		t.Errorf("manual override ignored: %q", a.RYMLink())
	}
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		in     string
		want   SortField
		wantOK bool
	}{
		{"artist", SortByArtist, true},
		{" Rating ", SortByRating, true},
		{"year", SortByYear, true},
		{"added", SortByAdded, true},
		{"bpm", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseSortField(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseSortField(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}

	if o, ok := ParseSortOrder("DESC"); !ok || o != SortDesc {
		t.Errorf("ParseSortOrder(DESC) = %q, %v", o, ok)
	}
	if _, ok := ParseSortOrder("sideways"); ok {
		t.Error("ParseSortOrder accepted an invalid direction")
	}
}
