package confide

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confide-social/confide/app"
	"github.com/confide-social/confide/domain"
)

func TestPostService_CreatePrePopulatesHashtags(t *testing.T) {
	var got draftBody
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/posts", r.URL.Path)
		data, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(data, &got))
		w.Write([]byte(`{"id":"new-1","content":"late night #Thoughts again #thoughts"}`))
	}))
	defer srv.Close()

	svc := NewPostService(NewClient(srv.URL, nil, nil), "me")
	c, err := svc.Create(context.Background(), app.Draft{
		Content:    "late night #Thoughts again #thoughts",
		Categories: []string{"Mental Health"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"thoughts", "thoughts"}, got.Hashtags)
	assert.Equal(t, "NEVER", got.ExpiryDuration)
	assert.True(t, c.IsOwn)
}

func TestPostService_CreateRejectsEmptyContent(t *testing.T) {
	svc := NewPostService(NewClient("http://unused", nil, nil), "me")
	_, err := svc.Create(context.Background(), app.Draft{Content: "   "})
	assert.True(t, errors.Is(err, domain.ErrEmptyConfession))
}

func TestPostService_React(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/posts/p1/react/bookmark", r.URL.Path)
		w.Write([]byte(`{"likes":4,"supports":2,"comments":1,"bookmarked":false}`))
	}))
	defer srv.Close()

	svc := NewPostService(NewClient(srv.URL, nil, nil), "me")
	upd, err := svc.React(context.Background(), "p1", domain.ReactionBookmark)
	require.NoError(t, err)
	assert.Equal(t, domain.ReactionUpdate{Likes: 4, Supports: 2, Comments: 1, Bookmarked: false}, upd)
}

func TestPostService_Delete(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/posts/p9", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	svc := NewPostService(NewClient(srv.URL, nil, nil), "me")
	require.NoError(t, svc.Delete(context.Background(), "p9"))
	assert.True(t, called)
}
