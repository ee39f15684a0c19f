package view

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cesargomez89/sonicvault/internal/constants"
	"github.com/cesargomez89/sonicvault/internal/domain"
)

// ratingBuckets is the histogram domain. Ratings below 1 are not charted.
var ratingBuckets = []float64{1, 1.5, 2, 2.5, 3, 3.5, 4, 4.5, 5}

// Options lists the distinct non-blank years (newest first) and tags (A-Z).
func Options(albums []domain.Album) domain.FilterOptions {
	years := make(map[string]struct{})
	tags := make(map[string]struct{})
	for i := range albums {
		if strings.TrimSpace(albums[i].Year) != "" {
			years[albums[i].Year] = struct{}{}
		}
		for _, t := range albums[i].Tags {
			tags[t] = struct{}{}
		}
	}

	opts := domain.FilterOptions{
		Years: keys(years),
		Tags:  keys(tags),
	}
	sort.Sort(sort.Reverse(sort.StringSlice(opts.Years)))
	sort.Strings(opts.Tags)
	return opts
}

// Summarize computes the rating histogram and ownership breakdown.
// Ownership entries appear in the order they are first seen.
func Summarize(albums []domain.Album) domain.Stats {
	counts := make(map[float64]int, len(ratingBuckets))
	for _, b := range ratingBuckets {
		counts[b] = 0
	}

	stats := domain.Stats{
		Total:     len(albums),
		Ratings:   make([]domain.ChartData, 0, len(ratingBuckets)),
		Ownership: []domain.ChartData{},
	}

	owners := make(map[string]int)
	for i := range albums {
		a := &albums[i]
		if a.HasRating() {
			stats.Rated++
			if _, ok := counts[*a.Rating]; ok {
				counts[*a.Rating]++
			}
		}

		o := a.Ownership
		if o == "" {
			o = constants.UnknownOwnership
		}
		if idx, ok := owners[o]; ok {
			stats.Ownership[idx].Value++
			continue
		}
		owners[o] = len(stats.Ownership)
		stats.Ownership = append(stats.Ownership, domain.ChartData{Name: o, Value: 1})
	}

	for _, b := range ratingBuckets {
		stats.Ratings = append(stats.Ratings, domain.ChartData{
			Name:  strconv.FormatFloat(b, 'f', -1, 64),
			Value: counts[b],
		})
	}
	return stats
}

func keys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
