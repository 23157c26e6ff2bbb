package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
)

// Config holds application-level configuration.
type Config struct {
	APIBaseURL  string // e.g. "https://confide.example.com"
	CookiePath  string // Persisted session cookies
	UIStatePath string // Persisted UI preferences
	LogPath     string // Append-only debug log
}

// Load reads configuration from a .env file (if present) and the environment.
//
//	CONFIDE_API     : API base URL (required in production; default is the
//	                   local dev server)
//	CONFIDE_COOKIES : Path to cookie file (default: XDG state dir)
//	CONFIDE_UISTATE : Path to UI state file (default: XDG state dir)
//	CONFIDE_LOG     : Path to log file (default: XDG state dir)
func Load() (Config, error) {
	_ = godotenv.Load()

	base := os.Getenv("CONFIDE_API")
	if base == "" {
		base = "http://localhost:8080"
	}
	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Config{}, fmt.Errorf("invalid CONFIDE_API: must be an absolute URL")
	}
	if parsed.Scheme != "https" && parsed.Scheme != "http" {
		return Config{}, fmt.Errorf("invalid CONFIDE_API: unsupported scheme %q", parsed.Scheme)
	}
	base = strings.TrimRight(parsed.String(), "/")

	cookiePath, err := statePath("CONFIDE_COOKIES", "cookies.json")
	if err != nil {
		return Config{}, err
	}
	uiStatePath, err := statePath("CONFIDE_UISTATE", "uistate.json")
	if err != nil {
		return Config{}, err
	}
	logPath, err := statePath("CONFIDE_LOG", "confide.log")
	if err != nil {
		return Config{}, err
	}

	return Config{
		APIBaseURL:  base,
		CookiePath:  cookiePath,
		UIStatePath: uiStatePath,
		LogPath:     logPath,
	}, nil
}

func statePath(envVar, name string) (string, error) {
	if p := os.Getenv(envVar); p != "" {
		return p, nil
	}
	p, err := xdg.StateFile("confide/" + name)
	if err != nil {
		return "", fmt.Errorf("resolving state path for %s: %w", name, err)
	}
	return p, nil
}

// UIState persists UI preferences across runs.
type UIState struct {
	FeedSource string `json:"feed_source,omitempty"`
	Category   string `json:"category,omitempty"`
	SortBy     string `json:"sort_by,omitempty"`
}

// LoadUIState reads persisted UI state. A missing or corrupt file yields the
// zero state without error; preferences are best-effort.
func LoadUIState(path string) (UIState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return UIState{}, nil
	}
	var s UIState
	if err := json.Unmarshal(data, &s); err != nil {
		return UIState{}, nil
	}
	return s, nil
}

// SaveUIState writes UI state atomically enough for a single-user file.
func SaveUIState(path string, s UIState) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding ui state: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing ui state: %w", err)
	}
	return nil
}
