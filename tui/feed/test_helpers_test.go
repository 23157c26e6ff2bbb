package feed

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/confide-social/confide/app"
	"github.com/confide-social/confide/domain"
)

type stubFeedService struct {
	pages     map[int]app.Page
	bookmarks map[int]app.Page
	own       map[int]app.Page
	recs      []domain.Confession
	err       error
}

func (s *stubFeedService) FetchPage(_ context.Context, q app.FeedQuery) (app.Page, error) {
	if s.err != nil {
		return app.Page{}, s.err
	}
	return s.pages[q.Page], nil
}

func (s *stubFeedService) FetchBookmarksPage(_ context.Context, page, _ int) (app.Page, error) {
	if s.err != nil {
		return app.Page{}, s.err
	}
	return s.bookmarks[page], nil
}

func (s *stubFeedService) FetchRecommendations(context.Context) ([]domain.Confession, error) {
	return s.recs, s.err
}

func (s *stubFeedService) FetchOwnPage(_ context.Context, page, _ int, _ bool) (app.Page, error) {
	if s.err != nil {
		return app.Page{}, s.err
	}
	return s.own[page], nil
}

type stubPostService struct {
	reactions map[string]domain.ReactionUpdate
	reactErr  error
	reacted   []string
}

func (s *stubPostService) Create(_ context.Context, d app.Draft) (domain.Confession, error) {
	return domain.Confession{ID: "created", Content: d.Content}, nil
}

func (s *stubPostService) Edit(_ context.Context, id string, d app.Draft) (domain.Confession, error) {
	return domain.Confession{ID: id, Content: d.Content}, nil
}

func (s *stubPostService) Delete(context.Context, string) error { return nil }

func (s *stubPostService) React(_ context.Context, id string, kind domain.ReactionKind) (domain.ReactionUpdate, error) {
	s.reacted = append(s.reacted, fmt.Sprintf("%s:%s", id, kind))
	if s.reactErr != nil {
		return domain.ReactionUpdate{}, s.reactErr
	}
	return s.reactions[id], nil
}

type stubCommentService struct {
	topLevel map[string][]domain.Comment
	replies  map[string][]domain.Comment
	created  domain.Comment
	err      error
}

func (s *stubCommentService) TopLevel(_ context.Context, postID string) ([]domain.Comment, error) {
	return s.topLevel[postID], s.err
}

func (s *stubCommentService) Replies(_ context.Context, commentID string) ([]domain.Comment, error) {
	return s.replies[commentID], s.err
}

func (s *stubCommentService) Create(_ context.Context, postID, parentID, content string) (domain.Comment, error) {
	if s.err != nil {
		return domain.Comment{}, s.err
	}
	c := s.created
	if c.ID == "" {
		c = domain.Comment{ID: "server-c", PostID: postID, ParentID: parentID, Content: content}
	}
	return c, nil
}

func (s *stubCommentService) Delete(context.Context, string) error { return s.err }

func (s *stubCommentService) ToggleLike(context.Context, string) (bool, int, error) {
	return true, 1, s.err
}

func newTestModel() Model {
	return New(&stubFeedService{}, &stubPostService{}, &stubCommentService{}, "", "", "")
}

func makeConfession(id string, likes int) domain.Confession {
	return domain.Confession{
		ID:        id,
		Username:  "anon",
		Title:     "title " + id,
		Content:   "content " + id,
		CreatedAt: time.Now().Add(-time.Hour),
		Likes:     likes,
	}
}

func makeItems(ids ...string) []ConfessionItem {
	items := make([]ConfessionItem, len(ids))
	for i, id := range ids {
		items[i] = ConfessionItem{Confession: makeConfession(id, 0)}
	}
	return items
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// drain runs a Cmd synchronously and returns its message.
func drain(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
