// Package constants contains application-wide constants to avoid magic numbers and strings.
package constants

import "time"

// Application defaults
const (
	DefaultPort        = "8080"
	DefaultDBPath      = "sonicvault.db"
	DefaultLastFMURL   = "https://ws.audioscrobbler.com/2.0/"
	DefaultITunesURL   = "https://itunes.apple.com/search"
	DefaultLLMBaseURL  = "https://openrouter.ai/api/v1/chat/completions"
	DefaultLLMModel    = "google/gemini-2.5-flash"
	DefaultEnrichDelay = 200 * time.Millisecond
	DefaultHTTPTimeout = 10 * time.Second
	DefaultRetryCount  = 3
	DefaultRetryBase   = 1 * time.Second
	DefaultCacheTTL    = 12 * time.Hour
	ShutdownTimeout    = 5 * time.Second
)

// Album defaults applied by the importer
const (
	DefaultArtist    = "Unknown Artist"
	DefaultTitle     = "Untitled"
	DefaultOwnership = "Digital"
	UnknownOwnership = "Unknown"
)

// Rating bounds
const (
	MinRating  = 0.0
	MaxRating  = 5.0
	RatingStep = 0.5
)

// Last.fm image sizes in preference order
const (
	ImageSizeMega       = "mega"
	ImageSizeExtraLarge = "extralarge"
	ImageSizeLarge      = "large"
)

// iTunes artwork size tokens
const (
	ITunesThumbToken = "100x100bb"
	ITunesLargeToken = "600x600bb"
)

// Enrichment
const (
	MaxInferredTags = 3
)

// Settings keys
const (
	SettingLastFMKey = "sonic_lastfm_key"
)

// Database
const (
	SettingsTable = "settings"
	CacheTable    = "cache"
)

// Assistant
const (
	AssistantTemperature = 0.7
	MaxQuestionLength    = 2000
)

// External search links
const (
	SpotifySearchURL = "https://open.spotify.com/search/"
	ReviewSearchURL  = "https://www.google.com/search"
	RYMSearchURL     = "https://rateyourmusic.com/search"
)
