package session

import (
	"net/http"
	"net/url"
	"path/filepath"
	"testing"
)

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	return u
}

func TestJar_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies.json")
	base := "https://confide.example.com"

	j, err := NewJar(path, base)
	if err != nil {
		t.Fatalf("NewJar: %v", err)
	}
	j.SetCookies(mustURL(t, base), []*http.Cookie{{Name: "SESSION", Value: "abc", Path: "/"}})
	if !j.HasSession() {
		t.Fatal("expected session after SetCookies")
	}

	j2, err := NewJar(path, base)
	if err != nil {
		t.Fatalf("NewJar (reload): %v", err)
	}
	if !j2.HasSession() {
		t.Fatal("expected persisted session in fresh jar")
	}
	got := j2.Cookies(mustURL(t, base))
	if len(got) != 1 || got[0].Name != "SESSION" || got[0].Value != "abc" {
		t.Fatalf("unexpected cookies after reload: %+v", got)
	}
}

func TestJar_ClearRemovesSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies.json")
	base := "https://confide.example.com"

	j, err := NewJar(path, base)
	if err != nil {
		t.Fatalf("NewJar: %v", err)
	}
	j.SetCookies(mustURL(t, base), []*http.Cookie{{Name: "SESSION", Value: "abc", Path: "/"}})
	if err := j.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if j.HasSession() {
		t.Fatal("expected no session after Clear")
	}

	j2, err := NewJar(path, base)
	if err != nil {
		t.Fatalf("NewJar (reload): %v", err)
	}
	if j2.HasSession() {
		t.Fatal("expected cleared session to stay cleared across restart")
	}
}

func TestJar_IgnoresForeignHosts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies.json")
	j, err := NewJar(path, "https://confide.example.com")
	if err != nil {
		t.Fatalf("NewJar: %v", err)
	}
	j.SetCookies(mustURL(t, "https://other.example.com"), []*http.Cookie{{Name: "X", Value: "1", Path: "/"}})
	if j.HasSession() {
		t.Fatal("foreign host cookie must not count as a session")
	}
}
