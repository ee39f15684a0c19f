package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cesargomez89/sonicvault/internal/constants"
)

// Config holds all application configuration
type Config struct {
	Port        string
	DBPath      string
	LogLevel    string
	LogFormat   string
	LastFMKey   string
	LastFMURL   string
	ITunesURL   string
	LLMAPIKey   string
	LLMBaseURL  string
	LLMModel    string
	EnrichDelay time.Duration
	HTTPTimeout time.Duration
	CacheTTL    time.Duration
	SeedLibrary bool

	parseErrors []string
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	cfg := &Config{
		Port:       getEnv("PORT", constants.DefaultPort),
		DBPath:     getEnv("DB_PATH", constants.DefaultDBPath),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogFormat:  getEnv("LOG_FORMAT", "text"),
		LastFMKey:  getEnv("LASTFM_API_KEY", ""),
		LastFMURL:  getEnv("LASTFM_URL", constants.DefaultLastFMURL),
		ITunesURL:  getEnv("ITUNES_URL", constants.DefaultITunesURL),
		LLMAPIKey:  getEnv("LLM_API_KEY", ""),
		LLMBaseURL: getEnv("LLM_BASE_URL", constants.DefaultLLMBaseURL),
		LLMModel:   getEnv("LLM_MODEL", constants.DefaultLLMModel),
	}

	cfg.EnrichDelay = cfg.durationEnv("ENRICH_DELAY", constants.DefaultEnrichDelay)
	cfg.HTTPTimeout = cfg.durationEnv("HTTP_TIMEOUT", constants.DefaultHTTPTimeout)
	cfg.CacheTTL = cfg.durationEnv("CACHE_TTL", constants.DefaultCacheTTL)
	cfg.SeedLibrary = cfg.boolEnv("SEED_LIBRARY", false)

	return cfg
}

// Validate validates the configuration and returns detailed errors
func (c *Config) Validate() error {
	errors := append([]string{}, c.parseErrors...)

	// Validate Port
	if c.Port == "" {
		errors = append(errors, "PORT cannot be empty")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			errors = append(errors, fmt.Sprintf("PORT must be a valid number, got: %s", c.Port))
		} else if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("PORT must be between 1 and 65535, got: %d", port))
		}
	}

	if c.DBPath == "" {
		errors = append(errors, "DB_PATH cannot be empty")
	}

	errors = append(errors, validateURL("LASTFM_URL", c.LastFMURL)...)
	errors = append(errors, validateURL("ITUNES_URL", c.ITunesURL)...)
	errors = append(errors, validateURL("LLM_BASE_URL", c.LLMBaseURL)...)

	if c.EnrichDelay < 0 {
		errors = append(errors, fmt.Sprintf("ENRICH_DELAY cannot be negative, got: %s", c.EnrichDelay))
	}
	if c.HTTPTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("HTTP_TIMEOUT must be positive, got: %s", c.HTTPTimeout))
	}
	if c.CacheTTL < 0 {
		errors = append(errors, fmt.Sprintf("CACHE_TTL cannot be negative, got: %s", c.CacheTTL))
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		errors = append(errors, fmt.Sprintf("LOG_LEVEL must be one of: debug, info, warn, error, got: %s", c.LogLevel))
	}

	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[c.LogFormat] {
		errors = append(errors, fmt.Sprintf("LOG_FORMAT must be one of: text, json, got: %s", c.LogFormat))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

func validateURL(name, value string) []string {
	if value == "" {
		return []string{name + " cannot be empty"}
	}
	u, err := url.Parse(value)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return []string{fmt.Sprintf("%s is not a valid URL: %s", name, value)}
	}
	return nil
}

func (c *Config) durationEnv(key string, fallback time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		c.parseErrors = append(c.parseErrors, fmt.Sprintf("%s must be a duration (e.g. 200ms), got: %s", key, raw))
		return fallback
	}
	return d
}

func (c *Config) boolEnv(key string, fallback bool) bool {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		c.parseErrors = append(c.parseErrors, fmt.Sprintf("%s must be a boolean, got: %s", key, raw))
		return fallback
	}
	return b
}

// getEnv retrieves an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
