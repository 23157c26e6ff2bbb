package app

import (
	"context"

	"github.com/confide-social/confide/domain"
)

// AccountService manages the authenticated user's profile.
type AccountService interface {
	// CurrentProfile returns the authenticated user's profile.
	CurrentProfile(ctx context.Context) (domain.Profile, error)

	// UpdateProfile saves editable fields and returns the stored profile.
	UpdateProfile(ctx context.Context, p domain.Profile) (domain.Profile, error)

	// DeleteAccount removes the account permanently.
	DeleteAccount(ctx context.Context) error

	// UploadAvatar uploads a picture file and returns its URL.
	UploadAvatar(ctx context.Context, path string) (string, error)

	// Statistics returns aggregate stats over the user's own posts.
	Statistics(ctx context.Context) (domain.Statistics, error)
}
