// Package enrich fills in missing album artwork and metadata from external
// sources, one album at a time.
package enrich

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/cesargomez89/sonicvault/internal/constants"
	"github.com/cesargomez89/sonicvault/internal/domain"
	"github.com/cesargomez89/sonicvault/internal/lastfm"
	"github.com/cesargomez89/sonicvault/internal/logger"
)

var (
	ErrBusy        = errors.New("enrichment already running")
	ErrNothingToDo = errors.New("all albums are fully enriched")
	ErrClosed      = errors.New("enrichment pipeline closed")
)

// AlbumStore is the slice of the library the pipeline needs. The pipeline
// only ever writes through Update.
type AlbumStore interface {
	List() []domain.Album
	Get(id string) (domain.Album, error)
	Update(id string, patch domain.AlbumPatch) (domain.Album, error)
}

// PrimarySource supplies artwork, description, stats and tags.
type PrimarySource interface {
	GetAlbumInfo(ctx context.Context, apiKey, artist, title string) (*lastfm.AlbumInfo, error)
}

// FallbackSource supplies artwork only.
type FallbackSource interface {
	SearchArtwork(ctx context.Context, term string) (string, error)
}

type Config struct {
	Delay time.Duration // pause after every album
}

// Status is a snapshot of the pipeline for progress reporting.
type Status struct {
	Running     bool      `json:"running"`
	RunID       string    `json:"run_id,omitempty"`
	Processed   int       `json:"processed"`
	Total       int       `json:"total"`
	Queued      int       `json:"queued"`
	LastOutcome Outcome   `json:"last_outcome,omitempty"`
	StartedAt   time.Time `json:"started_at,omitzero"`
	FinishedAt  time.Time `json:"finished_at,omitzero"`
}

// Pipeline runs at most one enrichment loop at a time. Batches submitted
// while it is busy are queued and picked up by the running loop.
type Pipeline struct {
	albums     AlbumStore
	primary    PrimarySource
	fallback   FallbackSource
	credential func() string
	delay      time.Duration
	log        *logger.Logger

	slot *semaphore.Weighted
	wg   sync.WaitGroup

	baseCtx  context.Context
	shutdown context.CancelFunc

	mu      sync.Mutex
	pending []string
	cancel  context.CancelFunc
	status  Status
	closed  bool
}

func New(cfg Config, albums AlbumStore, primary PrimarySource, fallback FallbackSource, credential func() string, log *logger.Logger) *Pipeline {
	if cfg.Delay < 0 {
		cfg.Delay = 0
	}
	if credential == nil {
		credential = func() string { return "" }
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pipeline{
		albums:     albums,
		primary:    primary,
		fallback:   fallback,
		credential: credential,
		delay:      cfg.Delay,
		log:        log.WithComponent("enrich"),
		slot:       semaphore.NewWeighted(1),
		baseCtx:    ctx,
		shutdown:   cancel,
	}
}

// RunAll starts a pass over the whole library. It returns ErrBusy if a pass
// is already running and ErrNothingToDo, without touching the network, when
// every album is fully enriched.
func (p *Pipeline) RunAll() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return "", ErrClosed
	}
	if !p.slot.TryAcquire(1) {
		return "", ErrBusy
	}

	ids := candidates(p.albums.List())
	if len(ids) == 0 {
		p.slot.Release(1)
		p.status.LastOutcome = OutcomeNothingToDo
		p.log.Info("All albums are fully enriched")
		return "", ErrNothingToDo
	}

	return p.startLocked(ids), nil
}

// Submit enriches a specific batch, such as freshly imported albums. If a
// pass is running the batch is queued behind it. It returns the number of
// albums accepted.
func (p *Pipeline) Submit(batch []domain.Album) (int, error) {
	ids := candidates(batch)
	if len(ids) == 0 {
		return 0, ErrNothingToDo
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return 0, ErrClosed
	}
	if p.slot.TryAcquire(1) {
		p.startLocked(ids)
		return len(ids), nil
	}

	p.pending = append(p.pending, ids...)
	p.log.Debug("Queued enrichment batch", "albums", len(ids), "queued", len(p.pending))
	return len(ids), nil
}

// Cancel stops the running pass between albums and drops anything queued.
// It reports whether a pass was running.
func (p *Pipeline) Cancel() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.status.Running {
		return false
	}
	p.pending = nil
	p.cancel()
	p.log.Info("Enrichment cancellation requested", "run_id", p.status.RunID)
	return true
}

func (p *Pipeline) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := p.status
	s.Queued = len(p.pending)
	return s
}

// Wait blocks until no pass is running.
func (p *Pipeline) Wait() {
	p.wg.Wait()
}

// Close cancels any running pass and waits for it to stop.
func (p *Pipeline) Close() {
	p.mu.Lock()
	p.closed = true
	p.pending = nil
	p.mu.Unlock()

	p.shutdown()
	p.wg.Wait()
}

// startLocked launches the loop. Caller holds mu and the slot.
func (p *Pipeline) startLocked(ids []string) string {
	ctx, cancel := context.WithCancel(p.baseCtx)
	p.cancel = cancel
	runID := p.beginRunLocked(len(ids))

	p.wg.Add(1)
	go p.loop(ctx, ids)
	return runID
}

func (p *Pipeline) beginRunLocked(total int) string {
	runID := uuid.NewString()
	p.status = Status{
		Running:     true,
		RunID:       runID,
		Total:       total,
		LastOutcome: p.status.LastOutcome,
		StartedAt:   time.Now(),
	}
	p.log.Info("Enrichment started", "run_id", runID, "albums", total)
	return runID
}

func (p *Pipeline) loop(ctx context.Context, ids []string) {
	defer p.wg.Done()

	for {
		outcome := p.process(ctx, ids)

		p.mu.Lock()
		if len(p.pending) == 0 || p.closed {
			p.finishLocked(outcome, true)
			p.mu.Unlock()
			return
		}

		ids = p.pending
		p.pending = nil
		if outcome == OutcomeCancelled {
			// Batches that arrived after a cancel get a fresh run.
			p.finishLocked(outcome, false)
			ctx, p.cancel = context.WithCancel(p.baseCtx)
			p.beginRunLocked(len(ids))
		} else {
			p.status.Total += len(ids)
		}
		p.mu.Unlock()
	}
}

// finishLocked records the outcome and, if release is set, frees the slot.
// Caller holds mu.
func (p *Pipeline) finishLocked(outcome Outcome, release bool) {
	p.status.Running = false
	p.status.LastOutcome = outcome
	p.status.FinishedAt = time.Now()
	p.cancel()

	p.log.Info("Enrichment finished",
		"run_id", p.status.RunID,
		"outcome", string(outcome),
		"processed", p.status.Processed,
		"total", p.status.Total,
		"duration", p.status.FinishedAt.Sub(p.status.StartedAt).String(),
	)

	if release {
		p.slot.Release(1)
	}
}

// process walks ids in order, pausing after each album.
func (p *Pipeline) process(ctx context.Context, ids []string) Outcome {
	apiKey := p.credential()
	log := p.log.WithRun(p.Status().RunID)

	for _, id := range ids {
		if ctx.Err() != nil {
			return OutcomeCancelled
		}

		state := p.enrichOne(ctx, log, apiKey, id)

		p.mu.Lock()
		p.status.Processed++
		p.mu.Unlock()
		log.Debug("Album processed", "album_id", id, "state", state.String())

		if err := sleep(ctx, p.delay); err != nil {
			return OutcomeCancelled
		}
	}
	return OutcomeCompleted
}

// candidates returns the ids of albums still missing a cover or description.
func candidates(albums []domain.Album) []string {
	ids := make([]string, 0, len(albums))
	for i := range albums {
		if albums[i].NeedsEnrichment() {
			ids = append(ids, albums[i].ID)
		}
	}
	return ids
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

var imagePreference = []string{
	constants.ImageSizeMega,
	constants.ImageSizeExtraLarge,
	constants.ImageSizeLarge,
}
