package app

import (
	"context"

	"github.com/confide-social/confide/domain"
)

// Page is one page of a paginated list endpoint.
type Page struct {
	Content    []domain.Confession
	TotalPages int
	Last       bool
}

// FeedQuery selects a page of the main feed.
type FeedQuery struct {
	Page   int
	Size   int
	SortBy string // "latest" or "trending"; empty means server default
}

// FeedService fetches confession lists from the backend.
type FeedService interface {
	// FetchPage returns one page of the main feed.
	FetchPage(ctx context.Context, q FeedQuery) (Page, error)

	// FetchBookmarksPage returns one page of the user's bookmarked confessions.
	FetchBookmarksPage(ctx context.Context, page, size int) (Page, error)

	// FetchRecommendations returns the personalized, unpaginated feed.
	FetchRecommendations(ctx context.Context) ([]domain.Confession, error)

	// FetchOwnPage returns one page of the user's own confessions.
	FetchOwnPage(ctx context.Context, page, size int, includeExpired bool) (Page, error)
}
