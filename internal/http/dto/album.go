package dto

import (
	"strings"

	"github.com/cesargomez89/sonicvault/internal/constants"
	"github.com/cesargomez89/sonicvault/internal/domain"
)

type AlbumCreateRequest struct {
	Artist     string   `json:"artist"`
	Title      string   `json:"title"`
	Rating     *float64 `json:"rating"`
	Ownership  string   `json:"ownership"`
	Year       string   `json:"year"`
	Tags       []string `json:"tags"`
	SpotifyURL string   `json:"spotify_url"`
	ReviewURL  string   `json:"review_url"`
	RYMURL     string   `json:"rym_url"`
}

func (r *AlbumCreateRequest) Validate() []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(r.Artist) == "" && strings.TrimSpace(r.Title) == "" {
		errs = append(errs, ValidationError{Field: "title", Message: "artist or title is required"})
	}
	errs = append(errs, validateRating(r.Rating)...)
	errs = append(errs, validateYear(&r.Year)...)
	errs = append(errs, validateURL("spotify_url", &r.SpotifyURL)...)
	errs = append(errs, validateURL("review_url", &r.ReviewURL)...)
	errs = append(errs, validateURL("rym_url", &r.RYMURL)...)

	return errs
}

func (r *AlbumCreateRequest) ToAlbum() domain.Album {
	a := domain.Album{
		Artist:     strings.TrimSpace(r.Artist),
		Title:      strings.TrimSpace(r.Title),
		Ownership:  strings.TrimSpace(r.Ownership),
		Year:       strings.TrimSpace(r.Year),
		Tags:       cleanTags(r.Tags),
		SpotifyURL: r.SpotifyURL,
		ReviewURL:  r.ReviewURL,
		RYMURL:     r.RYMURL,
	}
	if r.Rating != nil {
		a.Rating = domain.Float(*r.Rating)
	}
	return a
}

// AlbumUpdateRequest is a partial update. Absent fields are left untouched;
// clear_rating removes the rating.
type AlbumUpdateRequest struct {
	Artist      *string  `json:"artist"`
	Title       *string  `json:"title"`
	Rating      *float64 `json:"rating"`
	ClearRating bool     `json:"clear_rating"`
	Ownership   *string  `json:"ownership"`
	Year        *string  `json:"year"`
	Tags        []string `json:"tags"`
	CoverURL    *string  `json:"cover_url"`
	Description *string  `json:"description"`
	SpotifyURL  *string  `json:"spotify_url"`
	ReviewURL   *string  `json:"review_url"`
	RYMURL      *string  `json:"rym_url"`
}

func (r *AlbumUpdateRequest) Validate() []ValidationError {
	var errs []ValidationError

	errs = append(errs, validateRequired("artist", r.Artist)...)
	errs = append(errs, validateRequired("title", r.Title)...)
	errs = append(errs, validateRating(r.Rating)...)
	if r.ClearRating && r.Rating != nil {
		errs = append(errs, ValidationError{Field: "rating", Message: "cannot set and clear rating together"})
	}
	errs = append(errs, validateYear(r.Year)...)
	errs = append(errs, validateURL("cover_url", r.CoverURL)...)
	errs = append(errs, validateURL("spotify_url", r.SpotifyURL)...)
	errs = append(errs, validateURL("review_url", r.ReviewURL)...)
	errs = append(errs, validateURL("rym_url", r.RYMURL)...)

	return errs
}

func (r *AlbumUpdateRequest) ToPatch() domain.AlbumPatch {
	return domain.AlbumPatch{
		Artist:      trimmed(r.Artist),
		Title:       trimmed(r.Title),
		Rating:      r.Rating,
		ClearRating: r.ClearRating,
		Ownership:   trimmed(r.Ownership),
		Year:        trimmed(r.Year),
		Tags:        cleanTags(r.Tags),
		CoverURL:    r.CoverURL,
		Description: r.Description,
		SpotifyURL:  r.SpotifyURL,
		ReviewURL:   r.ReviewURL,
		RYMURL:      r.RYMURL,
	}
}

// FilterRequest replaces the session filter.
type FilterRequest struct {
	Search    string  `json:"search"`
	MinRating float64 `json:"min_rating"`
	Year      string  `json:"year"`
	Tag       string  `json:"tag"`
}

func (r *FilterRequest) Validate() []ValidationError {
	var errs []ValidationError
	if r.MinRating < constants.MinRating || r.MinRating > constants.MaxRating {
		errs = append(errs, ValidationError{Field: "min_rating", Message: "must be between 0 and 5"})
	}
	return errs
}

func (r *FilterRequest) ToFilter() domain.Filter {
	return domain.Filter{
		Search:    strings.TrimSpace(r.Search),
		MinRating: r.MinRating,
		Year:      r.Year,
		Tag:       r.Tag,
	}
}

type SelectionRequest struct {
	ID string `json:"id"`
}

type LastFMKeyRequest struct {
	Key string `json:"key"`
}

type LastFMKeyResponse struct {
	Configured bool `json:"configured"`
}

type QuestionRequest struct {
	Question string `json:"question"`
}

func (r *QuestionRequest) Validate() []ValidationError {
	return validateText("question", r.Question, constants.MaxQuestionLength)
}

type ParseRequest struct {
	Text string `json:"text"`
}

func (r *ParseRequest) Validate() []ValidationError {
	return validateText("text", r.Text, constants.MaxQuestionLength)
}

type AnswerResponse struct {
	Answer string `json:"answer"`
}

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}
