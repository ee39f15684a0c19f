package constants

import (
	"testing"
	"time"
)

func TestApplicationDefaults(t *testing.T) {
	if DefaultPort != "8080" {
		t.Errorf("DefaultPort = %q, want %q", DefaultPort, "8080")
	}
	if DefaultEnrichDelay != 200*time.Millisecond {
		t.Errorf("DefaultEnrichDelay = %v, want 200ms", DefaultEnrichDelay)
	}
	if DefaultHTTPTimeout <= 0 {
		t.Error("DefaultHTTPTimeout must be positive so external calls are bounded")
	}
	if DefaultRetryCount < 1 {
		t.Errorf("DefaultRetryCount = %d, want at least 1", DefaultRetryCount)
	}
}

func TestAlbumDefaults(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{"artist", DefaultArtist, "Unknown Artist"},
		{"title", DefaultTitle, "Untitled"},
		{"ownership", DefaultOwnership, "Digital"},
		{"unknown ownership", UnknownOwnership, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != tt.expected {
				t.Errorf("%s = %q, want %q", tt.name, tt.value, tt.expected)
			}
		})
	}
}

func TestRatingBounds(t *testing.T) {
	if MinRating != 0 || MaxRating != 5 {
		t.Errorf("rating bounds = [%v, %v], want [0, 5]", MinRating, MaxRating)
	}
	if RatingStep != 0.5 {
		t.Errorf("RatingStep = %v, want 0.5", RatingStep)
	}
}

func TestITunesTokens(t *testing.T) {
	if ITunesThumbToken == ITunesLargeToken {
		t.Error("thumbnail and large artwork tokens must differ")
	}
}
