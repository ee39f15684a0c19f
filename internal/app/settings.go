package app

import (
	"fmt"
	"strings"
	"sync"

	"github.com/cesargomez89/sonicvault/internal/constants"
	"github.com/cesargomez89/sonicvault/internal/logger"
)

// SettingsStore is the persisted key/value table.
type SettingsStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// SettingsService owns the Last.fm credential. It is loaded once at startup,
// falling back to the configured default, and saved on every change.
type SettingsService struct {
	repo       SettingsStore
	defaultKey string
	log        *logger.Logger

	mu        sync.RWMutex
	lastFMKey string
}

func NewSettingsService(repo SettingsStore, defaultKey string, log *logger.Logger) *SettingsService {
	return &SettingsService{
		repo:       repo,
		defaultKey: strings.TrimSpace(defaultKey),
		log:        log.WithComponent("settings"),
		lastFMKey:  strings.TrimSpace(defaultKey),
	}
}

// Load reads the stored credential. An unset key keeps the default.
func (s *SettingsService) Load() error {
	v, ok, err := s.repo.Get(constants.SettingLastFMKey)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", constants.SettingLastFMKey, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if ok {
		s.lastFMKey = v
		s.log.Debug("Loaded stored Last.fm key", "configured", v != "")
	} else {
		s.lastFMKey = s.defaultKey
	}
	return nil
}

// LastFMKey returns the current credential, possibly empty.
func (s *SettingsService) LastFMKey() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastFMKey
}

// SetLastFMKey persists and activates a new credential. An empty value is
// stored as is and disables the primary source.
func (s *SettingsService) SetLastFMKey(key string) error {
	key = strings.TrimSpace(key)
	if err := s.repo.Set(constants.SettingLastFMKey, key); err != nil {
		return fmt.Errorf("failed to save %s: %w", constants.SettingLastFMKey, err)
	}

	s.mu.Lock()
	s.lastFMKey = key
	s.mu.Unlock()

	s.log.Info("Last.fm key updated", "configured", key != "")
	return nil
}
