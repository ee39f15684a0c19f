package lastfm

import (
	"bytes"
	"encoding/json"
)

// AlbumInfo is the subset of album.getinfo the catalog consumes. Any field
// may be empty.
type AlbumInfo struct {
	Images    []Image  `json:"images"`
	Summary   string   `json:"summary"`
	Listeners string   `json:"listeners"`
	Playcount string   `json:"playcount"`
	Tags      []string `json:"tags"`
}

type Image struct {
	Size string `json:"size"`
	URL  string `json:"url"`
}

// ImageBySize returns the URL of the first image of that size, or "".
func (a *AlbumInfo) ImageBySize(size string) string {
	for _, img := range a.Images {
		if img.Size == size && img.URL != "" {
			return img.URL
		}
	}
	return ""
}

// BestImage picks the first non-empty image in the given size preference.
func (a *AlbumInfo) BestImage(sizes ...string) string {
	for _, s := range sizes {
		if u := a.ImageBySize(s); u != "" {
			return u
		}
	}
	return ""
}

// Wire format of album.getinfo.

type albumInfoResponse struct {
	Album   *albumPayload `json:"album"`
	Error   int           `json:"error"`
	Message string        `json:"message"`
}

type albumPayload struct {
	Name      string      `json:"name"`
	Artist    string      `json:"artist"`
	Image     []imageItem `json:"image"`
	Listeners string      `json:"listeners"`
	Playcount string      `json:"playcount"`
	Tags      tagList     `json:"tags"`
	Wiki      *struct {
		Summary string `json:"summary"`
	} `json:"wiki"`
}

type imageItem struct {
	URL  string `json:"#text"`
	Size string `json:"size"`
}

type tagItem struct {
	Name string `json:"name"`
}

// tagList accepts {"tag":[...]}, {"tag":{...}} and the empty string the
// API sends when an album has no tags.
type tagList []tagItem

func (t *tagList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		*t = nil
		return nil
	}

	var wrapper struct {
		Tag json.RawMessage `json:"tag"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}

	raw := bytes.TrimSpace(wrapper.Tag)
	switch {
	case len(raw) == 0:
		*t = nil
	case raw[0] == '[':
		var items []tagItem
		if err := json.Unmarshal(raw, &items); err != nil {
			return err
		}
		*t = items
	case raw[0] == '{':
		var item tagItem
		if err := json.Unmarshal(raw, &item); err != nil {
			return err
		}
		*t = tagList{item}
	default:
		*t = nil
	}
	return nil
}

func (p *albumPayload) toAlbumInfo() *AlbumInfo {
	info := &AlbumInfo{
		Images:    make([]Image, 0, len(p.Image)),
		Listeners: p.Listeners,
		Playcount: p.Playcount,
		Tags:      make([]string, 0, len(p.Tags)),
	}
	for _, img := range p.Image {
		info.Images = append(info.Images, Image{Size: img.Size, URL: img.URL})
	}
	for _, tag := range p.Tags {
		if tag.Name != "" {
			info.Tags = append(info.Tags, tag.Name)
		}
	}
	if p.Wiki != nil {
		info.Summary = p.Wiki.Summary
	}
	return info
}
