package confide

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/confide-social/confide/app"
	"github.com/confide-social/confide/domain"
)

// feedService implements app.FeedService using the Confide API.
type feedService struct {
	client          *Client
	currentUsername string // Set after login to mark own posts in lists.
}

// NewFeedService creates a FeedService backed by the Confide API.
// Pass currentUsername to mark the user's own posts in the feed.
func NewFeedService(client *Client, currentUsername string) *feedService {
	return &feedService{client: client, currentUsername: currentUsername}
}

// SetCurrentUsername updates own-post detection after a login that happens
// later than service construction.
func (s *feedService) SetCurrentUsername(username string) {
	s.currentUsername = username
}

type feedParams struct {
	Page   int    `url:"page"`
	Size   int    `url:"size"`
	SortBy string `url:"sortBy,omitempty"`
}

type ownParams struct {
	Page           int  `url:"page"`
	Size           int  `url:"size"`
	IncludeExpired bool `url:"includeExpired,omitempty"`
}

func (s *feedService) FetchPage(_ context.Context, q app.FeedQuery) (app.Page, error) {
	data, err := s.client.Get("/api/posts", feedParams{Page: q.Page, Size: q.Size, SortBy: q.SortBy})
	if err != nil {
		return app.Page{}, fmt.Errorf("fetching feed page: %w", err)
	}
	return s.parsePage(data)
}

func (s *feedService) FetchBookmarksPage(_ context.Context, page, size int) (app.Page, error) {
	data, err := s.client.Get("/api/posts/bookmarks", feedParams{Page: page, Size: size})
	if err != nil {
		return app.Page{}, fmt.Errorf("fetching bookmarks page: %w", err)
	}
	return s.parsePage(data)
}

func (s *feedService) FetchRecommendations(_ context.Context) ([]domain.Confession, error) {
	data, err := s.client.Get("/api/posts/recommendations", nil)
	if err != nil {
		return nil, fmt.Errorf("fetching recommendations: %w", err)
	}
	var recs []confessionRecord
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("parsing recommendations: %w", err)
	}
	return mapConfessions(recs, s.currentUsername), nil
}

func (s *feedService) FetchOwnPage(_ context.Context, page, size int, includeExpired bool) (app.Page, error) {
	data, err := s.client.Get("/api/user/posts", ownParams{Page: page, Size: size, IncludeExpired: includeExpired})
	if err != nil {
		return app.Page{}, fmt.Errorf("fetching own posts page: %w", err)
	}
	return s.parsePage(data)
}

func (s *feedService) parsePage(data []byte) (app.Page, error) {
	var rec pageRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return app.Page{}, fmt.Errorf("parsing page: %w", err)
	}
	return app.Page{
		Content:    mapConfessions(rec.Content, s.currentUsername),
		TotalPages: rec.TotalPages,
		Last:       rec.Last,
	}, nil
}
