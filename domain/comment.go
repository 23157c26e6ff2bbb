package domain

import "time"

// Comment is a single entry in a confession's two-level comment tree.
// Top-level comments carry their replies; replies never nest further.
type Comment struct {
	ID        string
	PostID    string
	ParentID  string // Empty for top-level comments
	Username  string
	Content   string
	CreatedAt time.Time
	Likes     int
	IsLiked   bool
	Replies   []Comment // Populated lazily, top-level only
}

// IsReply reports whether the comment belongs under a parent.
func (c Comment) IsReply() bool {
	return c.ParentID != ""
}
