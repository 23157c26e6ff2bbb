package app

import (
	"context"

	"github.com/confide-social/confide/domain"
)

// CommentService manages a confession's two-level comment tree.
type CommentService interface {
	// TopLevel returns the top-level comments of a confession, oldest first.
	TopLevel(ctx context.Context, postID string) ([]domain.Comment, error)

	// Replies returns the replies of a top-level comment, oldest first.
	Replies(ctx context.Context, commentID string) ([]domain.Comment, error)

	// Create posts a comment; parentID is empty for a top-level comment.
	Create(ctx context.Context, postID, parentID, content string) (domain.Comment, error)

	// Delete removes a comment by ID.
	Delete(ctx context.Context, id string) error

	// ToggleLike flips the viewer's like and returns the authoritative state.
	ToggleLike(ctx context.Context, id string) (liked bool, likes int, err error)
}
