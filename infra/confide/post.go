package confide

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/confide-social/confide/app"
	"github.com/confide-social/confide/domain"
)

const maxConfessionLen = 2000

// postService implements app.PostService using the Confide API.
type postService struct {
	client          *Client
	currentUsername string
}

// NewPostService creates a PostService backed by the Confide API.
func NewPostService(client *Client, currentUsername string) *postService {
	return &postService{client: client, currentUsername: currentUsername}
}

func (s *postService) SetCurrentUsername(username string) {
	s.currentUsername = username
}

type draftBody struct {
	Title          string   `json:"title,omitempty"`
	Content        string   `json:"content"`
	Categories     []string `json:"categories"`
	Hashtags       []string `json:"hashtags"`
	ExpiryDuration string   `json:"expiryDuration"`
}

func buildDraftBody(d app.Draft) (draftBody, error) {
	content := strings.TrimSpace(d.Content)
	if content == "" {
		return draftBody{}, domain.ErrEmptyConfession
	}
	if len([]rune(content)) > maxConfessionLen {
		return draftBody{}, domain.ErrConfessionTooLong
	}
	hashtags := d.Hashtags
	if len(hashtags) == 0 {
		hashtags = domain.ExtractHashtags(content)
	}
	expiry := d.Expiry
	if expiry == "" {
		expiry = domain.ExpiryNever
	}
	return draftBody{
		Title:          strings.TrimSpace(d.Title),
		Content:        content,
		Categories:     d.Categories,
		Hashtags:       hashtags,
		ExpiryDuration: string(expiry),
	}, nil
}

func (s *postService) Create(_ context.Context, d app.Draft) (domain.Confession, error) {
	body, err := buildDraftBody(d)
	if err != nil {
		return domain.Confession{}, err
	}
	data, err := s.client.Post("/api/posts", body)
	if err != nil {
		return domain.Confession{}, fmt.Errorf("creating confession: %w", err)
	}
	return s.parseConfession(data)
}

func (s *postService) Edit(_ context.Context, id string, d app.Draft) (domain.Confession, error) {
	body, err := buildDraftBody(d)
	if err != nil {
		return domain.Confession{}, err
	}
	data, err := s.client.Put(fmt.Sprintf("/api/posts/%s", id), body)
	if err != nil {
		return domain.Confession{}, fmt.Errorf("editing confession: %w", err)
	}
	return s.parseConfession(data)
}

func (s *postService) Delete(_ context.Context, id string) error {
	if _, err := s.client.Delete(fmt.Sprintf("/api/posts/%s", id)); err != nil {
		return fmt.Errorf("deleting confession: %w", err)
	}
	return nil
}

type reactionRecord struct {
	Likes      int  `json:"likes"`
	Supports   int  `json:"supports"`
	Comments   int  `json:"comments"`
	Bookmarked bool `json:"bookmarked"`
}

func (s *postService) React(_ context.Context, id string, kind domain.ReactionKind) (domain.ReactionUpdate, error) {
	data, err := s.client.Post(fmt.Sprintf("/api/posts/%s/react/%s", id, kind), nil)
	if err != nil {
		return domain.ReactionUpdate{}, fmt.Errorf("reacting to confession: %w", err)
	}
	var rec reactionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return domain.ReactionUpdate{}, fmt.Errorf("parsing reaction response: %w", err)
	}
	return domain.ReactionUpdate{
		Likes:      rec.Likes,
		Supports:   rec.Supports,
		Comments:   rec.Comments,
		Bookmarked: rec.Bookmarked,
	}, nil
}

func (s *postService) parseConfession(data []byte) (domain.Confession, error) {
	var rec confessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return domain.Confession{}, fmt.Errorf("parsing confession response: %w", err)
	}
	c := mapConfession(rec, s.currentUsername)
	// The user just performed the action, so it is theirs regardless of how
	// the backend anonymizes the username.
	c.IsOwn = true
	return c, nil
}
