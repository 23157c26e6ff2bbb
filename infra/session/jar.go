package session

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"path/filepath"
	"sync"
)

// Jar is an http.CookieJar that persists the API host's cookies to disk so
// the session survives restarts. The on-disk file doubles as the local
// "signed in" flag.
type Jar struct {
	mu   sync.Mutex
	jar  *cookiejar.Jar
	path string
	base *url.URL
}

type storedCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Path  string `json:"path,omitempty"`
}

// NewJar creates a cookie jar persisted at path, scoped to baseURL's host.
// Previously saved cookies are loaded if present.
func NewJar(path, baseURL string) (*Jar, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}
	inner, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}
	j := &Jar{jar: inner, path: path, base: base}
	j.load()
	return j, nil
}

// Cookies implements http.CookieJar.
func (j *Jar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.jar.Cookies(u)
}

// SetCookies implements http.CookieJar and persists the updated session.
func (j *Jar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.jar.SetCookies(u, cookies)
	if u.Host == j.base.Host {
		j.persist()
	}
}

// HasSession reports whether any cookie is held for the API host.
func (j *Jar) HasSession() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.jar.Cookies(j.base)) > 0
}

// Clear drops all cookies and removes the persisted file.
func (j *Jar) Clear() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	inner, err := cookiejar.New(nil)
	if err != nil {
		return fmt.Errorf("resetting cookie jar: %w", err)
	}
	j.jar = inner
	if err := os.Remove(j.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing cookie file: %w", err)
	}
	return nil
}

func (j *Jar) load() {
	data, err := os.ReadFile(j.path)
	if err != nil {
		return
	}
	var stored []storedCookie
	if err := json.Unmarshal(data, &stored); err != nil {
		return
	}
	cookies := make([]*http.Cookie, 0, len(stored))
	for _, c := range stored {
		cookies = append(cookies, &http.Cookie{Name: c.Name, Value: c.Value, Path: c.Path})
	}
	j.jar.SetCookies(j.base, cookies)
}

func (j *Jar) persist() {
	cookies := j.jar.Cookies(j.base)
	stored := make([]storedCookie, 0, len(cookies))
	for _, c := range cookies {
		stored = append(stored, storedCookie{Name: c.Name, Value: c.Value, Path: c.Path})
	}
	data, err := json.Marshal(stored)
	if err != nil {
		return
	}
	_ = os.MkdirAll(filepath.Dir(j.path), 0o700)
	_ = os.WriteFile(j.path, data, 0o600)
}
