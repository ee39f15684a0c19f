package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/cesargomez89/sonicvault/internal/app"
	"github.com/cesargomez89/sonicvault/internal/assistant"
	"github.com/cesargomez89/sonicvault/internal/config"
	"github.com/cesargomez89/sonicvault/internal/constants"
	"github.com/cesargomez89/sonicvault/internal/enrich"
	httpapp "github.com/cesargomez89/sonicvault/internal/http"
	"github.com/cesargomez89/sonicvault/internal/httpclient"
	"github.com/cesargomez89/sonicvault/internal/itunes"
	"github.com/cesargomez89/sonicvault/internal/lastfm"
	"github.com/cesargomez89/sonicvault/internal/library"
	"github.com/cesargomez89/sonicvault/internal/llm"
	"github.com/cesargomez89/sonicvault/internal/logger"
	"github.com/cesargomez89/sonicvault/internal/store"
)

func main() {
	cfg := config.Load()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	db, err := store.NewSQLiteDB(cfg.DBPath)
	if err != nil {
		appLogger.Error("Failed to init DB", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	settings := app.NewSettingsService(store.NewSettingsRepo(db), cfg.LastFMKey, appLogger)
	if err := settings.Load(); err != nil {
		appLogger.Error("Failed to load settings", "error", err)
		os.Exit(1)
	}

	// External clients. Each gets its own pacing so one slow service does
	// not hold up the others.
	lastfmHTTP := httpclient.NewClient(nil, cfg.HTTPTimeout,
		httpclient.WithMinInterval(cfg.EnrichDelay),
		httpclient.WithRetries(constants.DefaultRetryCount, constants.DefaultRetryBase),
	)
	itunesHTTP := httpclient.NewClient(nil, cfg.HTTPTimeout,
		httpclient.WithRetries(constants.DefaultRetryCount, constants.DefaultRetryBase),
	)
	llmHTTP := httpclient.NewClient(nil, 2*cfg.HTTPTimeout)

	primary := lastfm.NewCachedClient(lastfm.NewClient(cfg.LastFMURL, lastfmHTTP), db, cfg.CacheTTL)
	fallback := itunes.NewClient(cfg.ITunesURL, itunesHTTP)
	bridge := assistant.NewBridge(llm.NewClient(llm.Config{
		APIKey:  cfg.LLMAPIKey,
		BaseURL: cfg.LLMBaseURL,
		Model:   cfg.LLMModel,
		Title:   "SonicVault",
	}, llmHTTP), appLogger)

	lib := library.NewStore()
	pipeline := enrich.New(enrich.Config{Delay: cfg.EnrichDelay}, lib, primary, fallback, settings.LastFMKey, appLogger)
	defer pipeline.Close()

	catalog := app.NewCatalogService(lib, pipeline, bridge, appLogger)
	if cfg.SeedLibrary {
		if err := catalog.SeedSample(); err != nil {
			appLogger.Error("Failed to seed library", "error", err)
			os.Exit(1)
		}
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	h := httpapp.NewHandler(catalog, settings, appLogger)
	h.RegisterRoutes(r)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		appLogger.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		purgeCache(gctx, db, cfg.CacheTTL, appLogger)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		appLogger.Error("Server error", "error", err)
		pipeline.Close()
		os.Exit(1)
	}

	appLogger.Info("Server exiting")
}

// purgeCache drops expired response cache rows until ctx is done.
func purgeCache(ctx context.Context, db *store.DB, ttl time.Duration, log *logger.Logger) {
	if ttl <= 0 {
		return
	}
	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := db.PurgeExpiredCache()
			if err != nil {
				log.Warn("Failed to purge cache", "error", err)
				continue
			}
			if n > 0 {
				log.Debug("Purged expired cache entries", "count", n)
			}
		}
	}
}
