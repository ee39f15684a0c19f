package domain

import "strings"

// Filter holds the four conjunctive filter criteria. Zero values match everything.
type Filter struct {
	Search    string  `json:"search"`
	MinRating float64 `json:"min_rating"`
	Year      string  `json:"year"`
	Tag       string  `json:"tag"`
}

type SortField string

const (
	SortByArtist    SortField = "artist"
	SortByTitle     SortField = "title"
	SortByRating    SortField = "rating"
	SortByYear      SortField = "year"
	SortByOwnership SortField = "ownership"
	SortByAdded     SortField = "added"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Sort is the active sort field and direction.
type Sort struct {
	Field SortField `json:"field"`
	Order SortOrder `json:"order"`
}

// DefaultSort is artist ascending.
var DefaultSort = Sort{Field: SortByArtist, Order: SortAsc}

// ParseSortField validates a user-supplied field name.
func ParseSortField(s string) (SortField, bool) {
	switch f := SortField(strings.ToLower(strings.TrimSpace(s))); f {
	case SortByArtist, SortByTitle, SortByRating, SortByYear, SortByOwnership, SortByAdded:
		return f, true
	}
	return "", false
}

// ParseSortOrder validates a user-supplied direction.
func ParseSortOrder(s string) (SortOrder, bool) {
	switch o := SortOrder(strings.ToLower(strings.TrimSpace(s))); o {
	case SortAsc, SortDesc:
		return o, true
	}
	return "", false
}

// ChartData is one bar or slice of a statistics chart.
type ChartData struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Stats summarizes the collection for the dashboard.
type Stats struct {
	Total     int         `json:"total"`
	Rated     int         `json:"rated"`
	Ratings   []ChartData `json:"ratings"`
	Ownership []ChartData `json:"ownership"`
}

// FilterOptions are the distinct values offered by the year and tag filters.
type FilterOptions struct {
	Years []string `json:"years"`
	Tags  []string `json:"tags"`
}
