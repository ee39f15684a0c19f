// Package importer turns pasted spreadsheet rows into album records.
//
// Columns are positional: artist, title, rating, ownership, year, tags.
// Rows are tab separated (as copied from a spreadsheet); a row that does not
// split into at least two columns on tabs is retried on commas.
package importer

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/cesargomez89/sonicvault/internal/constants"
	"github.com/cesargomez89/sonicvault/internal/domain"
)

const (
	colArtist = iota
	colTitle
	colRating
	colOwnership
	colYear
	colTags
)

// Result is the outcome of parsing one paste.
type Result struct {
	Albums  []domain.Album
	Dropped int // non-blank lines with fewer than two columns
}

// Parse converts text into albums in line order. Malformed lines are
// skipped and counted, never reported as errors.
func Parse(text string) Result {
	return parse(text, uuid.NewString)
}

func parse(text string, newID func() string) Result {
	res := Result{Albums: []domain.Album{}}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		cols := strings.Split(line, "\t")
		if len(cols) < 2 {
			cols = strings.Split(line, ",")
		}
		if len(cols) < 2 {
			res.Dropped++
			continue
		}

		res.Albums = append(res.Albums, domain.Album{
			ID:        newID(),
			Artist:    orDefault(column(cols, colArtist), constants.DefaultArtist),
			Title:     orDefault(column(cols, colTitle), constants.DefaultTitle),
			Rating:    ParseRating(column(cols, colRating)),
			Ownership: orDefault(column(cols, colOwnership), constants.DefaultOwnership),
			Year:      column(cols, colYear),
			Tags:      SplitTags(column(cols, colTags)),
		})
	}

	return res
}

// ParseRating reads a decimal rating. Blank, unparseable and out-of-range
// values yield nil; anything else is rounded to the nearest half star.
func ParseRating(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	if v < constants.MinRating || v > constants.MaxRating {
		return nil
	}
	v = math.Round(v/constants.RatingStep) * constants.RatingStep
	return &v
}

// SplitTags splits a comma list, trimming each tag and dropping empty ones.
func SplitTags(s string) []string {
	tags := []string{}
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func column(cols []string, i int) string {
	if i >= len(cols) {
		return ""
	}
	return strings.TrimSpace(cols[i])
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
