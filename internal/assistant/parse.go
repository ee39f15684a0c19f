package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/cesargomez89/sonicvault/internal/importer"
	"github.com/cesargomez89/sonicvault/internal/llm"
)

const parseInstruction = `Extract album details from the user's text.
Respond with a single JSON object using only these keys, omitting any you cannot determine:
"artist" (string), "title" (string), "year" (string), "rating" (number 0-5), "ownership" (string), "tags" (array of strings).`

// Draft is a partially filled album suggested by the model.
type Draft struct {
	Artist    string   `json:"artist,omitempty"`
	Title     string   `json:"title,omitempty"`
	Year      string   `json:"year,omitempty"`
	Rating    *float64 `json:"rating,omitempty"`
	Ownership string   `json:"ownership,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

// IsEmpty reports whether nothing was extracted.
func (d Draft) IsEmpty() bool {
	return d.Artist == "" && d.Title == "" && d.Year == "" && d.Rating == nil &&
		d.Ownership == "" && len(d.Tags) == 0
}

// ParseAlbum asks the model to turn free text into album fields. Any failure,
// including a missing key, yields an empty Draft.
func (b *Bridge) ParseAlbum(ctx context.Context, text string) Draft {
	if strings.TrimSpace(text) == "" {
		return Draft{}
	}

	reply, err := b.llm.Complete(ctx, llm.Request{
		System: parseInstruction,
		User:   fmt.Sprintf("Extract album details from this text: \"%s\"", text),
		JSON:   true,
	})
	if err != nil {
		b.log.Debug("Album parse request failed", "error", err)
		return Draft{}
	}

	var raw rawDraft
	if err := llm.DecodeJSON(reply, &raw); err != nil {
		b.log.Debug("Album parse reply was not JSON", "error", err)
		return Draft{}
	}
	return raw.draft()
}

// rawDraft tolerates numbers where strings are expected and vice versa.
type rawDraft struct {
	Artist    looseString `json:"artist"`
	Title     looseString `json:"title"`
	Year      looseString `json:"year"`
	Rating    looseString `json:"rating"`
	Ownership looseString `json:"ownership"`
	Tags      []string    `json:"tags"`
}

func (r rawDraft) draft() Draft {
	d := Draft{
		Artist:    strings.TrimSpace(string(r.Artist)),
		Title:     strings.TrimSpace(string(r.Title)),
		Year:      strings.TrimSpace(string(r.Year)),
		Rating:    importer.ParseRating(string(r.Rating)),
		Ownership: strings.TrimSpace(string(r.Ownership)),
	}
	for _, t := range r.Tags {
		if t = strings.TrimSpace(t); t != "" {
			d.Tags = append(d.Tags, t)
		}
	}
	return d
}

type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*s = ""
	case data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = looseString(v)
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return err
		}
		*s = looseString(strconv.FormatFloat(f, 'f', -1, 64))
	default:
		*s = ""
	}
	return nil
}
