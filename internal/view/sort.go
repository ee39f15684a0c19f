package view

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/cesargomez89/sonicvault/internal/domain"
)

// Sort returns a sorted copy of albums. The sort is stable, so ties keep
// their input order. SortByAdded relies on the input being in insertion order.
func Sort(albums []domain.Album, s domain.Sort) []domain.Album {
	out := make([]domain.Album, len(albums))
	copy(out, albums)

	if s.Field == domain.SortByAdded {
		if s.Order == domain.SortDesc {
			for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
				out[i], out[j] = out[j], out[i]
			}
		}
		return out
	}

	cmp := comparator(s.Field)
	desc := s.Order == domain.SortDesc
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return cmp(&out[j], &out[i]) < 0
		}
		return cmp(&out[i], &out[j]) < 0
	})
	return out
}

// Toggle returns the sort after the user picks field: the same field flips
// direction, a new field starts ascending.
func Toggle(current domain.Sort, field domain.SortField) domain.Sort {
	if current.Field == field {
		if current.Order == domain.SortAsc {
			return domain.Sort{Field: field, Order: domain.SortDesc}
		}
		return domain.Sort{Field: field, Order: domain.SortAsc}
	}
	return domain.Sort{Field: field, Order: domain.SortAsc}
}

func comparator(field domain.SortField) func(a, b *domain.Album) int {
	switch field {
	case domain.SortByRating:
		return func(a, b *domain.Album) int {
			ra, rb := a.RatingValue(), b.RatingValue()
			switch {
			case ra < rb:
				return -1
			case ra > rb:
				return 1
			}
			return 0
		}
	case domain.SortByYear:
		return func(a, b *domain.Album) int {
			return strings.Compare(a.Year, b.Year)
		}
	}

	// A Collator keeps internal buffers, so each sort gets its own.
	col := collate.New(language.Und)
	key := stringField(field)
	return func(a, b *domain.Album) int {
		return col.CompareString(key(a), key(b))
	}
}

func stringField(field domain.SortField) func(a *domain.Album) string {
	switch field {
	case domain.SortByTitle:
		return func(a *domain.Album) string { return a.Title }
	case domain.SortByOwnership:
		return func(a *domain.Album) string { return a.Ownership }
	default:
		return func(a *domain.Album) string { return a.Artist }
	}
}
