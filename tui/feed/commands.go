package feed

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/confide-social/confide/app"
	"github.com/confide-social/confide/domain"
)

// queryKey identifies the server query the list currently mirrors. A page
// response tagged with a different key is stale and gets dropped.
func (m Model) queryKey() string {
	return fmt.Sprintf("%s|%s|%t", m.source, m.sortBy, m.includeExpired)
}

func (m Model) fetchPage(reqSeq, page int) tea.Cmd {
	svc := m.feedSvc
	source := m.source
	sortBy := m.sortBy
	includeExpired := m.includeExpired
	key := m.queryKey()
	appendPage := page > 0

	return func() tea.Msg {
		ctx := context.Background()
		var (
			result app.Page
			err    error
		)
		switch source {
		case sourceForYou:
			// Recommendations come back as a single unpaginated batch.
			var recs []domain.Confession
			recs, err = svc.FetchRecommendations(ctx)
			result = app.Page{Content: recs, TotalPages: 1, Last: true}
		case sourceBookmarks:
			result, err = svc.FetchBookmarksPage(ctx, page, pageSize)
		case sourceMine:
			result, err = svc.FetchOwnPage(ctx, page, pageSize, includeExpired)
		default:
			result, err = svc.FetchPage(ctx, app.FeedQuery{Page: page, Size: pageSize, SortBy: sortBy})
		}
		if err != nil {
			return PageErrorMsg{Err: err, QueryKey: key, ReqSeq: reqSeq, Append: appendPage}
		}
		return PageLoadedMsg{Page: result, PageIndex: page, QueryKey: key, ReqSeq: reqSeq, Append: appendPage}
	}
}

func (m Model) react(id string, kind domain.ReactionKind) tea.Cmd {
	svc := m.postSvc
	return func() tea.Msg {
		update, err := svc.React(context.Background(), id, kind)
		return ReactResultMsg{ID: id, Kind: kind, Update: update, Err: err}
	}
}

// fetchCommentTree loads the top-level comments for a confession and, for
// each one that has replies recorded, the reply list underneath it.
func (m Model) fetchCommentTree(postID string) tea.Cmd {
	svc := m.commentSvc
	return func() tea.Msg {
		ctx := context.Background()
		top, err := svc.TopLevel(ctx, postID)
		if err != nil {
			return CommentsLoadedMsg{PostID: postID, Err: err}
		}
		for i, c := range top {
			if len(c.Replies) > 0 {
				continue
			}
			replies, rerr := svc.Replies(ctx, c.ID)
			if rerr != nil {
				return CommentsLoadedMsg{PostID: postID, Err: rerr}
			}
			top[i].Replies = replies
		}
		return CommentsLoadedMsg{PostID: postID, Comments: top}
	}
}

func (m Model) createComment(localID, postID, parentID, content string) tea.Cmd {
	svc := m.commentSvc
	return func() tea.Msg {
		comment, err := svc.Create(context.Background(), postID, parentID, content)
		return CommentPostedMsg{LocalID: localID, PostID: postID, ParentID: parentID, Comment: comment, Err: err}
	}
}

func (m Model) removeComment(id, parentID string) tea.Cmd {
	svc := m.commentSvc
	return func() tea.Msg {
		err := svc.Delete(context.Background(), id)
		return CommentDeletedMsg{ID: id, ParentID: parentID, Err: err}
	}
}

func (m Model) toggleCommentLike(id string) tea.Cmd {
	svc := m.commentSvc
	return func() tea.Msg {
		liked, likes, err := svc.ToggleLike(context.Background(), id)
		return CommentLikeResultMsg{ID: id, Liked: liked, Likes: likes, Err: err}
	}
}

func localCommentID() string {
	return "local-" + uuid.NewString()
}
