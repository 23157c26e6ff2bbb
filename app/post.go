package app

import (
	"context"

	"github.com/confide-social/confide/domain"
)

// Draft carries the user-editable fields of a confession.
type Draft struct {
	Title      string
	Content    string
	Categories []string
	Hashtags   []string // Pre-populated from Content when empty
	Expiry     domain.ExpiryDuration
}

// PostService creates, edits, deletes, and reacts to confessions.
type PostService interface {
	// Create publishes a new confession.
	Create(ctx context.Context, d Draft) (domain.Confession, error)

	// Edit updates an existing confession owned by the user.
	Edit(ctx context.Context, id string, d Draft) (domain.Confession, error)

	// Delete removes a confession by ID.
	Delete(ctx context.Context, id string) error

	// React toggles a reaction and returns the server's counters.
	React(ctx context.Context, id string, kind domain.ReactionKind) (domain.ReactionUpdate, error)
}
