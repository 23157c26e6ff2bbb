package domain

import "time"

// ExpiryDuration controls when a confession becomes inaccessible.
type ExpiryDuration string

const (
	ExpiryHours24 ExpiryDuration = "HOURS_24"
	ExpiryDays7   ExpiryDuration = "DAYS_7"
	ExpiryNever   ExpiryDuration = "NEVER"
)

// Confession is a single anonymous or pseudonymous post from the feed.
type Confession struct {
	ID              string
	Username        string
	DisplayUsername string
	Title           string
	GeneratedTitle  string
	Content         string
	Categories      []string
	Hashtags        []string
	CreatedAt       time.Time
	ExpiresAt       time.Time // Zero when the post never expires
	ExpiryDuration  ExpiryDuration
	Likes           int
	Supports        int
	Comments        int
	Bookmarked      bool
	TrendingScore   float64
	IsOwn           bool // True if this confession belongs to the authenticated user
}

// DisplayTitle prefers the author's title, falling back to the
// server-generated one.
func (c Confession) DisplayTitle() string {
	if c.Title != "" {
		return c.Title
	}
	return c.GeneratedTitle
}

// ReactionKind identifies a toggleable reaction on a confession.
type ReactionKind string

const (
	ReactionLike     ReactionKind = "like"
	ReactionSupport  ReactionKind = "support"
	ReactionBookmark ReactionKind = "bookmark"
)

// ReactionUpdate carries the authoritative counters returned by a
// reaction endpoint. The client never mutates counters before this arrives.
type ReactionUpdate struct {
	Likes      int
	Supports   int
	Comments   int
	Bookmarked bool
}

// Categories is the fixed set of topical tags the platform supports.
var Categories = []string{
	"Mental Health",
	"Relationships",
	"Work",
	"Family",
	"School",
	"Other",
}
