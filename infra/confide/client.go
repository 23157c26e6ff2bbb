package confide

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-querystring/query"

	"github.com/confide-social/confide/domain"
)

// Client is a thin HTTP wrapper for the Confide API.
// It handles base URL construction, cookie credentials, JSON bodies,
// and uniform error mapping.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

// NewClient creates a Confide API client. The jar carries the session
// cookie; a nil logger disables logging.
func NewClient(baseURL string, jar http.CookieJar, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Jar:     jar,
			Timeout: 15 * time.Second,
		},
		log: logger,
	}
}

// Get performs a GET request. q, when non-nil, is encoded into the query
// string from its `url` struct tags.
func (c *Client) Get(path string, q any) ([]byte, error) {
	if q != nil {
		vals, err := query.Values(q)
		if err != nil {
			return nil, fmt.Errorf("encoding query for %s: %w", path, err)
		}
		if encoded := vals.Encode(); encoded != "" {
			path += "?" + encoded
		}
	}
	return c.do(http.MethodGet, path, "", nil)
}

// Post performs a POST request with an optional JSON body.
func (c *Client) Post(path string, body any) ([]byte, error) {
	r, err := jsonBody(body)
	if err != nil {
		return nil, fmt.Errorf("encoding body for %s: %w", path, err)
	}
	return c.do(http.MethodPost, path, "application/json", r)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(path string, body any) ([]byte, error) {
	r, err := jsonBody(body)
	if err != nil {
		return nil, fmt.Errorf("encoding body for %s: %w", path, err)
	}
	return c.do(http.MethodPut, path, "application/json", r)
}

// Delete performs a DELETE request.
func (c *Client) Delete(path string) ([]byte, error) {
	return c.do(http.MethodDelete, path, "", nil)
}

// PostMultipart uploads a single file under the given form field.
func (c *Client) PostMultipart(path, field, filename string, file io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		return nil, fmt.Errorf("creating multipart form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("copying file into form: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalizing multipart form: %w", err)
	}
	return c.do(http.MethodPost, path, w.FormDataContentType(), &buf)
}

func jsonBody(body any) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

// apiError is the JSON error body the backend returns on non-2xx responses.
type apiError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) do(method, path, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("request failed", "method", method, "path", path, "err", err)
		return nil, fmt.Errorf("request to %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("API %s %s: %w", method, path, domain.ErrUnauthorized)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn("api error", "method", method, "path", path, "status", resp.StatusCode)
		var ae apiError
		if json.Unmarshal(data, &ae) == nil {
			if msg := firstNonEmpty(ae.Message, ae.Error); msg != "" {
				return nil, fmt.Errorf("API %s %s returned %d: %s", method, path, resp.StatusCode, msg)
			}
		}
		return nil, fmt.Errorf("API %s %s returned %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(data)))
	}

	return data, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
