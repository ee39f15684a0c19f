package domain

// AlbumPatch is a partial update applied by id. Nil fields are left untouched.
type AlbumPatch struct {
	Artist      *string
	Title       *string
	Rating      *float64
	ClearRating bool
	Ownership   *string
	Year        *string
	Tags        []string // nil leaves tags alone; an empty non-nil slice clears them

	CoverURL    *string
	Description *string
	Listeners   *string
	Playcount   *string

	SpotifyURL *string
	ReviewURL  *string
	RYMURL     *string
}

// IsEmpty reports whether applying the patch would change nothing.
func (p *AlbumPatch) IsEmpty() bool {
	return p.Artist == nil && p.Title == nil && p.Rating == nil && !p.ClearRating &&
		p.Ownership == nil && p.Year == nil && p.Tags == nil &&
		p.CoverURL == nil && p.Description == nil && p.Listeners == nil && p.Playcount == nil &&
		p.SpotifyURL == nil && p.ReviewURL == nil && p.RYMURL == nil
}

// Apply merges the patch onto a. Set fields win; enrichment fields are
// never cleared by an empty value.
func (p *AlbumPatch) Apply(a *Album) {
	if p.Artist != nil {
		a.Artist = *p.Artist
	}
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.ClearRating {
		a.Rating = nil
	}
	if p.Rating != nil {
		a.Rating = Float(*p.Rating)
	}
	if p.Ownership != nil {
		a.Ownership = *p.Ownership
	}
	if p.Year != nil {
		a.Year = *p.Year
	}
	if p.Tags != nil {
		a.Tags = append([]string{}, p.Tags...)
	}

	setIfPresent(&a.CoverURL, p.CoverURL)
	setIfPresent(&a.Description, p.Description)
	setIfPresent(&a.Listeners, p.Listeners)
	setIfPresent(&a.Playcount, p.Playcount)

	if p.SpotifyURL != nil {
		a.SpotifyURL = *p.SpotifyURL
	}
	if p.ReviewURL != nil {
		a.ReviewURL = *p.ReviewURL
	}
	if p.RYMURL != nil {
		a.RYMURL = *p.RYMURL
	}
}

func setIfPresent(dst *string, v *string) {
	if v != nil && *v != "" {
		*dst = *v
	}
}
