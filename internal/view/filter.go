// Package view derives the displayed album sequence from a store snapshot.
// Nothing here mutates its input.
package view

import (
	"strings"

	"github.com/cesargomez89/sonicvault/internal/domain"
)

// Matches reports whether a satisfies every criterion of f.
func Matches(a *domain.Album, f domain.Filter) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(a.Artist), q) &&
			!strings.Contains(strings.ToLower(a.Title), q) {
			return false
		}
	}

	if f.MinRating != 0 {
		if !a.HasRating() || *a.Rating < f.MinRating {
			return false
		}
	}

	if f.Year != "" && a.Year != f.Year {
		return false
	}

	if f.Tag != "" && !a.HasTag(f.Tag) {
		return false
	}

	return true
}

// Filter returns the albums matching f, in input order, as a new slice.
func Filter(albums []domain.Album, f domain.Filter) []domain.Album {
	out := make([]domain.Album, 0, len(albums))
	for i := range albums {
		if Matches(&albums[i], f) {
			out = append(out, albums[i])
		}
	}
	return out
}

// Apply filters then sorts. albums must be in insertion order.
func Apply(albums []domain.Album, f domain.Filter, s domain.Sort) []domain.Album {
	return Sort(Filter(albums, f), s)
}
