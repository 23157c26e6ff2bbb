package confide

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/confide-social/confide/domain"
)

// confessionRecord is the wire shape of a post as the backend sends it.
type confessionRecord struct {
	ID              string   `json:"id"`
	Username        string   `json:"username"`
	DisplayUsername string   `json:"displayUsername"`
	Title           string   `json:"title"`
	GeneratedTitle  string   `json:"generatedTitle"`
	Content         string   `json:"content"`
	Categories      []string `json:"categories"`
	Hashtags        []string `json:"hashtags"`
	CreatedAt       string   `json:"createdAt"`
	ExpiresAt       string   `json:"expiresAt"`
	ExpiryDuration  string   `json:"expiryDuration"`
	Likes           int      `json:"likes"`
	Supports        int      `json:"supports"`
	Comments        int      `json:"comments"`
	Bookmarked      bool     `json:"bookmarked"`
	TrendingScore   float64  `json:"trendingScore"`
}

// pageRecord is the wire shape of every paginated list response.
type pageRecord struct {
	Content    []confessionRecord `json:"content"`
	TotalPages int                `json:"totalPages"`
	Last       bool               `json:"last"`
}

type commentUserRecord struct {
	Username string `json:"username"`
}

type commentRecord struct {
	ID        string            `json:"id"`
	PostID    string            `json:"postId"`
	ParentID  string            `json:"parentId"`
	User      commentUserRecord `json:"user"`
	Content   string            `json:"content"`
	CreatedAt string            `json:"createdAt"`
	Likes     int               `json:"likes"`
	IsLiked   bool              `json:"isLiked"`
}

// parseTime is lenient about the backend's timestamp formats; a bad value
// maps to the zero time rather than failing the whole list.
func parseTime(s string) time.Time {
	if strings.TrimSpace(s) == "" {
		return time.Time{}
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func mapConfession(rec confessionRecord, currentUsername string) domain.Confession {
	return domain.Confession{
		ID:              rec.ID,
		Username:        rec.Username,
		DisplayUsername: rec.DisplayUsername,
		Title:           rec.Title,
		GeneratedTitle:  rec.GeneratedTitle,
		Content:         rec.Content,
		Categories:      rec.Categories,
		Hashtags:        rec.Hashtags,
		CreatedAt:       parseTime(rec.CreatedAt),
		ExpiresAt:       parseTime(rec.ExpiresAt),
		ExpiryDuration:  domain.ExpiryDuration(rec.ExpiryDuration),
		Likes:           rec.Likes,
		Supports:        rec.Supports,
		Comments:        rec.Comments,
		Bookmarked:      rec.Bookmarked,
		TrendingScore:   rec.TrendingScore,
		IsOwn:           currentUsername != "" && rec.Username == currentUsername,
	}
}

func mapConfessions(recs []confessionRecord, currentUsername string) []domain.Confession {
	out := make([]domain.Confession, 0, len(recs))
	for _, rec := range recs {
		out = append(out, mapConfession(rec, currentUsername))
	}
	return out
}

func mapComment(rec commentRecord) domain.Comment {
	return domain.Comment{
		ID:        rec.ID,
		PostID:    rec.PostID,
		ParentID:  rec.ParentID,
		Username:  rec.User.Username,
		Content:   rec.Content,
		CreatedAt: parseTime(rec.CreatedAt),
		Likes:     rec.Likes,
		IsLiked:   rec.IsLiked,
	}
}

func mapComments(recs []commentRecord) []domain.Comment {
	out := make([]domain.Comment, 0, len(recs))
	for _, rec := range recs {
		out = append(out, mapComment(rec))
	}
	return out
}
