package confide

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/confide-social/confide/domain"
)

// commentService implements app.CommentService using the Confide API.
type commentService struct {
	client *Client
}

// NewCommentService creates a CommentService backed by the Confide API.
func NewCommentService(client *Client) *commentService {
	return &commentService{client: client}
}

func (s *commentService) TopLevel(_ context.Context, postID string) ([]domain.Comment, error) {
	data, err := s.client.Get(fmt.Sprintf("/api/posts/%s/comments", postID), nil)
	if err != nil {
		return nil, fmt.Errorf("fetching comments: %w", err)
	}
	var recs []commentRecord
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("parsing comments: %w", err)
	}
	return mapComments(recs), nil
}

func (s *commentService) Replies(_ context.Context, commentID string) ([]domain.Comment, error) {
	data, err := s.client.Get(fmt.Sprintf("/api/posts/comments/%s/replies", commentID), nil)
	if err != nil {
		return nil, fmt.Errorf("fetching replies: %w", err)
	}
	var recs []commentRecord
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("parsing replies: %w", err)
	}
	return mapComments(recs), nil
}

type commentBody struct {
	Content  string `json:"content"`
	ParentID string `json:"parentId,omitempty"`
}

func (s *commentService) Create(_ context.Context, postID, parentID, content string) (domain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Comment{}, domain.ErrEmptyComment
	}
	data, err := s.client.Post(fmt.Sprintf("/api/posts/%s/comments", postID), commentBody{
		Content:  content,
		ParentID: parentID,
	})
	if err != nil {
		return domain.Comment{}, fmt.Errorf("posting comment: %w", err)
	}
	var rec commentRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return domain.Comment{}, fmt.Errorf("parsing comment response: %w", err)
	}
	return mapComment(rec), nil
}

func (s *commentService) Delete(_ context.Context, id string) error {
	if _, err := s.client.Delete(fmt.Sprintf("/api/posts/comments/%s", id)); err != nil {
		return fmt.Errorf("deleting comment: %w", err)
	}
	return nil
}

type commentLikeRecord struct {
	IsLiked    bool `json:"isLiked"`
	LikesCount int  `json:"likesCount"`
}

func (s *commentService) ToggleLike(_ context.Context, id string) (bool, int, error) {
	data, err := s.client.Post(fmt.Sprintf("/api/posts/comments/%s/like", id), nil)
	if err != nil {
		return false, 0, fmt.Errorf("liking comment: %w", err)
	}
	var rec commentLikeRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return false, 0, fmt.Errorf("parsing like response: %w", err)
	}
	return rec.IsLiked, rec.LikesCount, nil
}
