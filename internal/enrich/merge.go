package enrich

import (
	"context"

	"github.com/cesargomez89/sonicvault/internal/constants"
	"github.com/cesargomez89/sonicvault/internal/domain"
	"github.com/cesargomez89/sonicvault/internal/lastfm"
	"github.com/cesargomez89/sonicvault/internal/logger"
)

// enrichOne drives one album through Pending -> PrimaryQueried ->
// FallbackQueried -> Merged or Skipped. Source failures are logged and the
// album moves on to the next state.
func (p *Pipeline) enrichOne(ctx context.Context, runLog *logger.Logger, apiKey, id string) State {
	album, err := p.albums.Get(id)
	if err != nil {
		runLog.Debug("Album gone before enrichment", "album_id", id)
		return StateSkipped
	}
	log := runLog.WithAlbum(album.ID, album.Title)

	// An earlier batch may already have filled it in.
	if !album.NeedsEnrichment() {
		return StateSkipped
	}

	var patch domain.AlbumPatch
	state := StatePending

	if apiKey != "" {
		info, err := p.primary.GetAlbumInfo(ctx, apiKey, album.Artist, album.Title)
		switch {
		case err != nil:
			log.Warn("Primary lookup failed", "error", err)
		case info == nil:
			log.Debug("Primary source has no data")
		default:
			mergePrimary(&album, info, &patch)
		}
		state = StatePrimaryQueried
		log.Debug("Enrichment state", "state", state.String())
	}

	if album.CoverURL == "" && patch.CoverURL == nil && ctx.Err() == nil {
		artwork, err := p.fallback.SearchArtwork(ctx, album.Artist+" "+album.Title)
		switch {
		case err != nil:
			log.Warn("Fallback artwork lookup failed", "error", err)
		case artwork != "":
			patch.CoverURL = &artwork
		}
		state = StateFallbackQueried
		log.Debug("Enrichment state", "state", state.String())
	}

	if patch.IsEmpty() {
		return StateSkipped
	}

	if _, err := p.albums.Update(album.ID, patch); err != nil {
		log.Warn("Failed to merge enrichment", "error", err)
		return StateSkipped
	}
	log.Debug("Enrichment merged", "from", state.String())
	return StateMerged
}

// mergePrimary fills patch with the values album is missing.
func mergePrimary(album *domain.Album, info *lastfm.AlbumInfo, patch *domain.AlbumPatch) {
	if album.CoverURL == "" {
		if img := info.BestImage(imagePreference...); img != "" {
			patch.CoverURL = &img
		}
	}
	if album.Description == "" && info.Summary != "" {
		patch.Description = domain.String(info.Summary)
	}
	if info.Listeners != "" {
		patch.Listeners = domain.String(info.Listeners)
	}
	if info.Playcount != "" {
		patch.Playcount = domain.String(info.Playcount)
	}
	if len(album.Tags) == 0 && len(info.Tags) > 0 {
		n := min(len(info.Tags), constants.MaxInferredTags)
		patch.Tags = append([]string{}, info.Tags[:n]...)
	}
}
