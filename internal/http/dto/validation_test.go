package dto

import (
	"math"
	"testing"

	"github.com/cesargomez89/sonicvault/internal/domain"
)

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{Field: "title", Message: "is required"}
	if err.Error() != "title: is required" {
		t.Errorf("Error() = %q, want %q", err.Error(), "title: is required")
	}
}

func TestValidationError_ToMap(t *testing.T) {
	err := ValidationError{Field: "title", Message: "is required"}
	m := err.ToMap()
	if m["title"] != "is required" {
		t.Errorf("ToMap() = %v, want {title: is required}", m)
	}
}

func TestToMap(t *testing.T) {
	errs := []ValidationError{
		{Field: "title", Message: "is required"},
		{Field: "rating", Message: "must be between 0 and 5"},
	}
	m := ToMap(errs)
	if len(m) != 2 {
		t.Errorf("ToMap() returned %d items, want 2", len(m))
	}
	if m["rating"] != "must be between 0 and 5" {
		t.Errorf("ToMap()[rating] = %q", m["rating"])
	}
}

func TestToResponse(t *testing.T) {
	errs := []ValidationError{
		{Field: "title", Message: "is required"},
		{Field: "year", Message: "invalid"},
	}
	resp := ToResponse(errs)
	expected := "title: is required; year: invalid"
	if resp != expected {
		t.Errorf("ToResponse() = %q, want %q", resp, expected)
	}
}

func TestValidateRating(t *testing.T) {
	tests := []struct {
		rating   *float64
		name     string
		wantErrs int
	}{
		{nil, "nil rating", 0},
		{domain.Float(0), "zero", 0},
		{domain.Float(3.5), "half step", 0},
		{domain.Float(5), "max", 0},
		{domain.Float(5.5), "above max", 1},
		{domain.Float(-0.5), "negative", 1},
		{domain.Float(3.7), "off step", 1},
		{domain.Float(math.NaN()), "nan", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validateRating(tt.rating)
			if len(errs) != tt.wantErrs {
				t.Errorf("validateRating() returned %d errors, want %d", len(errs), tt.wantErrs)
			}
		})
	}
}

func TestValidateYear(t *testing.T) {
	tests := []struct {
		year     *string
		name     string
		wantErrs int
	}{
		{nil, "nil year", 0},
		{domain.String(""), "empty year", 0},
		{domain.String("1997"), "valid year", 0},
		{domain.String("97"), "short year", 1},
		{domain.String("1997-05"), "date", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validateYear(tt.year)
			if len(errs) != tt.wantErrs {
				t.Errorf("validateYear() returned %d errors, want %d", len(errs), tt.wantErrs)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		url      *string
		name     string
		wantErrs int
	}{
		{nil, "nil url", 0},
		{domain.String(""), "empty clears", 0},
		{domain.String("https://open.spotify.com/album/1"), "https", 0},
		{domain.String("http://example.com"), "http", 0},
		{domain.String("ftp://example.com/x"), "other scheme", 1},
		{domain.String("not a url"), "garbage", 1},
		{domain.String("https://"), "no host", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validateURL("spotify_url", tt.url)
			if len(errs) != tt.wantErrs {
				t.Errorf("validateURL() returned %d errors, want %d", len(errs), tt.wantErrs)
			}
			if len(errs) > 0 && errs[0].Field != "spotify_url" {
				t.Errorf("Expected field spotify_url, got %s", errs[0].Field)
			}
		})
	}
}

func TestAlbumCreateRequest_Validate(t *testing.T) {
	tests := []struct {
		name     string
		req      AlbumCreateRequest
		wantErrs int
	}{
		{"title only", AlbumCreateRequest{Title: "Kid A"}, 0},
		{"artist only", AlbumCreateRequest{Artist: "Radiohead"}, 0},
		{"neither", AlbumCreateRequest{Artist: " ", Title: ""}, 1},
		{"bad rating and url", AlbumCreateRequest{Title: "x", Rating: domain.Float(9), RYMURL: "nope"}, 2},
		{"full", AlbumCreateRequest{Artist: "Radiohead", Title: "Kid A", Rating: domain.Float(4.5), Year: "2000", SpotifyURL: "https://open.spotify.com/album/1"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.req.Validate()
			if len(errs) != tt.wantErrs {
				t.Errorf("Validate() returned %d errors (%s), want %d", len(errs), ToResponse(errs), tt.wantErrs)
			}
		})
	}
}

func TestAlbumCreateRequest_ToAlbum(t *testing.T) {
	req := AlbumCreateRequest{
		Artist: " Radiohead ",
		Title:  "Kid A",
		Rating: domain.Float(4),
		Tags:   []string{" electronic ", "", "art rock"},
	}
	a := req.ToAlbum()
	if a.Artist != "Radiohead" {
		t.Errorf("Expected trimmed artist, got %q", a.Artist)
	}
	if a.Rating == nil || *a.Rating != 4 {
		t.Errorf("Expected rating 4, got %v", a.Rating)
	}
	if a.Rating == req.Rating {
		t.Error("Rating must not alias the request")
	}
	if len(a.Tags) != 2 || a.Tags[0] != "electronic" || a.Tags[1] != "art rock" {
		t.Errorf("Unexpected tags %v", a.Tags)
	}
}

func TestAlbumUpdateRequest_Validate(t *testing.T) {
	tests := []struct {
		name     string
		req      AlbumUpdateRequest
		wantErrs int
	}{
		{"empty", AlbumUpdateRequest{}, 0},
		{"blank title", AlbumUpdateRequest{Title: domain.String("  ")}, 1},
		{"clear rating", AlbumUpdateRequest{ClearRating: true}, 0},
		{"set and clear", AlbumUpdateRequest{ClearRating: true, Rating: domain.Float(2)}, 1},
		{"clear manual link", AlbumUpdateRequest{SpotifyURL: domain.String("")}, 0},
		{"bad cover", AlbumUpdateRequest{CoverURL: domain.String("cover.jpg")}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.req.Validate()
			if len(errs) != tt.wantErrs {
				t.Errorf("Validate() returned %d errors (%s), want %d", len(errs), ToResponse(errs), tt.wantErrs)
			}
		})
	}
}

func TestAlbumUpdateRequest_ToPatch(t *testing.T) {
	req := AlbumUpdateRequest{
		Title: domain.String(" OK Computer "),
		Tags:  []string{},
	}
	p := req.ToPatch()
	if p.Title == nil || *p.Title != "OK Computer" {
		t.Errorf("Expected trimmed title, got %v", p.Title)
	}
	if p.Artist != nil {
		t.Error("Absent artist must stay nil")
	}
	if p.Tags == nil || len(p.Tags) != 0 {
		t.Errorf("Empty tags must clear, got %v", p.Tags)
	}

	if (&AlbumUpdateRequest{}).ToPatch().Tags != nil {
		t.Error("Absent tags must leave tags untouched")
	}
}

func TestQuestionRequest_Validate(t *testing.T) {
	if errs := (&QuestionRequest{Question: "  "}).Validate(); len(errs) != 1 {
		t.Errorf("Expected blank question to fail, got %d errors", len(errs))
	}
	if errs := (&QuestionRequest{Question: "Recommend something"}).Validate(); len(errs) != 0 {
		t.Errorf("Expected valid question, got %s", ToResponse(errs))
	}
}
