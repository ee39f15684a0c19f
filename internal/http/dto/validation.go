package dto

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strings"

	"github.com/cesargomez89/sonicvault/internal/constants"
)

var yearRegex = regexp.MustCompile(`^\d{4}$`)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) ToMap() map[string]string {
	return map[string]string{e.Field: e.Message}
}

func ToMap(errs []ValidationError) map[string]string {
	result := make(map[string]string)
	for _, e := range errs {
		result[e.Field] = e.Message
	}
	return result
}

func ToResponse(errs []ValidationError) string {
	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

func validateRating(rating *float64) []ValidationError {
	var errs []ValidationError
	if rating != nil {
		r := *rating
		switch {
		case math.IsNaN(r) || r < constants.MinRating || r > constants.MaxRating:
			errs = append(errs, ValidationError{Field: "rating", Message: "must be between 0 and 5"})
		case math.Mod(r, constants.RatingStep) != 0:
			errs = append(errs, ValidationError{Field: "rating", Message: "must be a multiple of 0.5"})
		}
	}
	return errs
}

func validateYear(year *string) []ValidationError {
	var errs []ValidationError
	if year != nil && *year != "" {
		if !yearRegex.MatchString(strings.TrimSpace(*year)) {
			errs = append(errs, ValidationError{Field: "year", Message: "invalid year format (expected: YYYY)"})
		}
	}
	return errs
}

// validateURL accepts an empty value, which clears a manual link.
func validateURL(field string, urlVal *string) []ValidationError {
	var errs []ValidationError
	if urlVal != nil && *urlVal != "" {
		u, err := url.ParseRequestURI(*urlVal)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, ValidationError{Field: field, Message: "invalid URL format"})
		}
	}
	return errs
}

func validateRequired(field string, value *string) []ValidationError {
	var errs []ValidationError
	if value != nil && strings.TrimSpace(*value) == "" {
		errs = append(errs, ValidationError{Field: field, Message: "cannot be empty"})
	}
	return errs
}

func validateText(field string, value string, max int) []ValidationError {
	var errs []ValidationError
	if strings.TrimSpace(value) == "" {
		errs = append(errs, ValidationError{Field: field, Message: "is required"})
	} else if len(value) > max {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf("must be at most %d characters", max)})
	}
	return errs
}

func cleanTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
