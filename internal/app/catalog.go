package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/cesargomez89/sonicvault/internal/assistant"
	"github.com/cesargomez89/sonicvault/internal/constants"
	"github.com/cesargomez89/sonicvault/internal/domain"
	"github.com/cesargomez89/sonicvault/internal/enrich"
	"github.com/cesargomez89/sonicvault/internal/importer"
	"github.com/cesargomez89/sonicvault/internal/library"
	"github.com/cesargomez89/sonicvault/internal/logger"
	"github.com/cesargomez89/sonicvault/internal/view"
)

// ErrConfirmationRequired is returned by destructive calls made without
// explicit confirmation.
var ErrConfirmationRequired = errors.New("confirmation required")

// Enricher is the enrichment pipeline as seen by the catalog.
type Enricher interface {
	RunAll() (string, error)
	Submit(batch []domain.Album) (int, error)
	Cancel() bool
	Status() enrich.Status
}

// Assistant answers questions about the collection.
type Assistant interface {
	Ask(ctx context.Context, question string, albums []domain.Album) string
	ParseAlbum(ctx context.Context, text string) assistant.Draft
}

// CatalogService handles the user intents: browsing, editing, importing,
// enriching and asking about the collection. It also holds the session's
// filter and sort.
type CatalogService struct {
	library   *library.Store
	enricher  Enricher
	assistant Assistant
	log       *logger.Logger

	mu     sync.RWMutex
	filter domain.Filter
	sort   domain.Sort
}

func NewCatalogService(lib *library.Store, enricher Enricher, asst Assistant, log *logger.Logger) *CatalogService {
	return &CatalogService{
		library:   lib,
		enricher:  enricher,
		assistant: asst,
		log:       log.WithComponent("catalog"),
		sort:      domain.DefaultSort,
	}
}

// AlbumDetail is an album together with its resolved external links.
type AlbumDetail struct {
	domain.Album
	Links    domain.Links `json:"links"`
	Selected bool         `json:"selected"`
}

// ImportResult reports what an import did.
type ImportResult struct {
	Imported  int            `json:"imported"`
	Dropped   int            `json:"dropped"`
	Enriching int            `json:"enriching"`
	Albums    []domain.Album `json:"albums"`
}

// SeedSample adds the sample catalog.
func (s *CatalogService) SeedSample() error {
	if err := s.library.AddMany(sampleCatalog()); err != nil {
		return fmt.Errorf("failed to seed library: %w", err)
	}
	s.log.Info("Seeded sample catalog", "albums", s.library.Len())
	return nil
}

// Session returns the current filter and sort.
func (s *CatalogService) Session() (domain.Filter, domain.Sort) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter, s.sort
}

func (s *CatalogService) SetFilter(f domain.Filter) domain.Filter {
	f.Search = strings.TrimSpace(f.Search)
	s.mu.Lock()
	s.filter = f
	s.mu.Unlock()
	return f
}

// ToggleSort applies a sort field pick to the session.
func (s *CatalogService) ToggleSort(field domain.SortField) domain.Sort {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sort = view.Toggle(s.sort, field)
	return s.sort
}

// View derives the displayed albums. The library is never modified.
func (s *CatalogService) View(f domain.Filter, srt domain.Sort) []domain.Album {
	return view.Apply(s.library.List(), f, srt)
}

// SessionView derives the displayed albums from the session criteria.
func (s *CatalogService) SessionView() []domain.Album {
	f, srt := s.Session()
	return s.View(f, srt)
}

func (s *CatalogService) Get(id string) (AlbumDetail, error) {
	a, err := s.library.Get(id)
	if err != nil {
		return AlbumDetail{}, err
	}
	return AlbumDetail{
		Album:    a,
		Links:    a.Links(),
		Selected: s.library.SelectedID() == id,
	}, nil
}

// Create adds a manually entered album and queues it for enrichment.
func (s *CatalogService) Create(a domain.Album) (domain.Album, error) {
	a.ID = uuid.NewString()
	a.Normalize()
	if a.Artist == "" {
		a.Artist = constants.DefaultArtist
	}
	if a.Title == "" {
		a.Title = constants.DefaultTitle
	}
	if a.Ownership == "" {
		a.Ownership = constants.DefaultOwnership
	}

	if err := s.library.Add(a); err != nil {
		return domain.Album{}, fmt.Errorf("failed to add album: %w", err)
	}
	s.log.Info("Album created", "album_id", a.ID, "artist", a.Artist, "title", a.Title)

	s.submit([]domain.Album{a})
	return s.library.Get(a.ID)
}

func (s *CatalogService) Update(id string, patch domain.AlbumPatch) (domain.Album, error) {
	a, err := s.library.Update(id, patch)
	if err != nil {
		return domain.Album{}, err
	}
	s.log.Debug("Album updated", "album_id", id)
	return a, nil
}

// Delete removes an album. It must be explicitly confirmed.
func (s *CatalogService) Delete(id string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	if err := s.library.Remove(id); err != nil {
		return err
	}
	s.log.Info("Album deleted", "album_id", id)
	return nil
}

func (s *CatalogService) Select(id string) (AlbumDetail, error) {
	if err := s.library.Select(id); err != nil {
		return AlbumDetail{}, err
	}
	return s.Get(id)
}

// Selected returns the selected album, if any.
func (s *CatalogService) Selected() (AlbumDetail, bool) {
	a, ok := s.library.Selected()
	if !ok {
		return AlbumDetail{}, false
	}
	return AlbumDetail{Album: a, Links: a.Links(), Selected: true}, true
}

func (s *CatalogService) ClearSelection() {
	s.library.ClearSelection()
}

// Import parses pasted rows, appends the albums in order and hands them to
// the enrichment pipeline.
func (s *CatalogService) Import(text string) (ImportResult, error) {
	parsed := importer.Parse(text)
	res := ImportResult{
		Imported: len(parsed.Albums),
		Dropped:  parsed.Dropped,
		Albums:   parsed.Albums,
	}
	if len(parsed.Albums) == 0 {
		s.log.Info("Import produced no albums", "dropped", parsed.Dropped)
		return res, nil
	}

	if err := s.library.AddMany(parsed.Albums); err != nil {
		return ImportResult{}, fmt.Errorf("failed to add imported albums: %w", err)
	}
	s.log.Info("Imported albums", "imported", res.Imported, "dropped", res.Dropped)

	res.Enriching = s.submit(parsed.Albums)
	return res, nil
}

// Enrich starts a whole-library enrichment pass.
func (s *CatalogService) Enrich() (string, error) {
	return s.enricher.RunAll()
}

func (s *CatalogService) EnrichStatus() enrich.Status {
	return s.enricher.Status()
}

func (s *CatalogService) CancelEnrich() bool {
	return s.enricher.Cancel()
}

func (s *CatalogService) Options() domain.FilterOptions {
	return view.Options(s.library.List())
}

func (s *CatalogService) Stats() domain.Stats {
	return view.Summarize(s.library.List())
}

// Ask forwards a question with the whole collection as context.
func (s *CatalogService) Ask(ctx context.Context, question string) string {
	return s.assistant.Ask(ctx, question, s.library.List())
}

func (s *CatalogService) ParseAlbum(ctx context.Context, text string) assistant.Draft {
	return s.assistant.ParseAlbum(ctx, text)
}

func (s *CatalogService) submit(batch []domain.Album) int {
	n, err := s.enricher.Submit(batch)
	switch {
	case errors.Is(err, enrich.ErrNothingToDo):
		return 0
	case err != nil:
		s.log.Warn("Failed to queue enrichment", "error", err)
		return 0
	}
	return n
}
