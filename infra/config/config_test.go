package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	t.Setenv("CONFIDE_API", "https://confide.example.com/")
	t.Setenv("CONFIDE_COOKIES", "/tmp/confide-test/cookies.json")
	t.Setenv("CONFIDE_UISTATE", "/tmp/confide-test/uistate.json")
	t.Setenv("CONFIDE_LOG", "/tmp/confide-test/confide.log")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "https://confide.example.com" {
		t.Errorf("expected trailing slash trimmed, got %q", cfg.APIBaseURL)
	}
	if cfg.CookiePath != "/tmp/confide-test/cookies.json" {
		t.Errorf("cookie path override ignored: %q", cfg.CookiePath)
	}
}

func TestLoad_RejectsBadURL(t *testing.T) {
	t.Setenv("CONFIDE_API", "not a url")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid CONFIDE_API")
	}

	t.Setenv("CONFIDE_API", "ftp://confide.example.com")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unsupported scheme")
	}
}

func TestUIState_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uistate.json")
	in := UIState{FeedSource: "bookmarks", Category: "Work", SortBy: "trending"}
	if err := SaveUIState(path, in); err != nil {
		t.Fatalf("SaveUIState: %v", err)
	}
	out, err := LoadUIState(path)
	if err != nil {
		t.Fatalf("LoadUIState: %v", err)
	}
	if out != in {
		t.Fatalf("round trip mismatch: got %+v want %+v", out, in)
	}
}

func TestLoadUIState_MissingOrCorruptFileIsZero(t *testing.T) {
	out, err := LoadUIState(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil || out != (UIState{}) {
		t.Fatalf("missing file: got %+v, %v", out, err)
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{nope"), 0o600); err != nil {
		t.Fatal(err)
	}
	out, err = LoadUIState(path)
	if err != nil || out != (UIState{}) {
		t.Fatalf("corrupt file: got %+v, %v", out, err)
	}
}
