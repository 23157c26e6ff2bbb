package feed

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/confide-social/confide/domain"
)

func (m Model) handleCommentsLoaded(msg CommentsLoadedMsg) (Model, tea.Cmd) {
	if m.focused == nil || m.focused.ID != msg.PostID {
		return m, nil
	}
	m.loadingComments = false
	if msg.Err != nil {
		m.commentErr = msg.Err
		return m, nil
	}
	m.commentErr = nil
	m.comments = msg.Comments
	m.treeCache.Add(msg.PostID, msg.Comments)
	m.clampCommentCursor()
	return m, nil
}

// submitComment inserts the speculative row immediately and returns the Cmd
// that performs the request. The row carries a local ID until the server
// responds.
func (m *Model) submitComment() tea.Cmd {
	content := strings.TrimSpace(m.commentBuffer)
	if content == "" || m.focused == nil {
		return nil
	}
	localID := localCommentID()
	parentID := m.replyTo
	speculative := domain.Comment{
		ID:        localID,
		PostID:    m.focused.ID,
		ParentID:  parentID,
		Username:  "you",
		Content:   content,
		CreatedAt: time.Now(),
	}
	if parentID == "" {
		m.comments = append([]domain.Comment{speculative}, m.comments...)
	} else {
		for i := range m.comments {
			if m.comments[i].ID == parentID {
				m.comments[i].Replies = append(m.comments[i].Replies, speculative)
				break
			}
		}
	}
	m.commentBuffer = ""
	m.commentInput = false
	m.replyTo = ""
	return m.createComment(localID, m.focused.ID, parentID, content)
}

func (m Model) handleCommentPosted(msg CommentPostedMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		// Roll the speculative row back out of the tree.
		m.dropComment(msg.LocalID, msg.ParentID)
		m.notice = "Comment failed: " + msg.Err.Error()
		return m, nil
	}
	replaced := m.replaceComment(msg.LocalID, msg.ParentID, msg.Comment)
	if !replaced && m.focused != nil && m.focused.ID == msg.PostID {
		// The detail view was reopened in between. Just prepend.
		if msg.ParentID == "" {
			m.comments = append([]domain.Comment{msg.Comment}, m.comments...)
		}
	}
	m.bumpCommentCount(msg.PostID, 1)
	if m.focused != nil {
		m.treeCache.Add(m.focused.ID, m.comments)
	}
	return m, nil
}

func (m Model) handleCommentDeleted(msg CommentDeletedMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		m.notice = "Delete failed: " + msg.Err.Error()
		return m, nil
	}
	removed := m.dropComment(msg.ID, msg.ParentID)
	if m.focused != nil {
		m.bumpCommentCount(m.focused.ID, -removed)
		m.treeCache.Add(m.focused.ID, m.comments)
	}
	m.clampCommentCursor()
	return m, nil
}

func (m Model) handleCommentLikeResult(msg CommentLikeResultMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		m.notice = "Like failed: " + msg.Err.Error()
		return m, nil
	}
	for i := range m.comments {
		if m.comments[i].ID == msg.ID {
			m.comments[i].IsLiked = msg.Liked
			m.comments[i].Likes = msg.Likes
			return m, nil
		}
		for j := range m.comments[i].Replies {
			if m.comments[i].Replies[j].ID == msg.ID {
				m.comments[i].Replies[j].IsLiked = msg.Liked
				m.comments[i].Replies[j].Likes = msg.Likes
				return m, nil
			}
		}
	}
	return m, nil
}

// dropComment removes a comment from the tree. Deleting a top-level comment
// takes its replies with it. Returns the number of comments removed.
func (m *Model) dropComment(id, parentID string) int {
	if parentID == "" {
		for i := range m.comments {
			if m.comments[i].ID == id {
				removed := 1 + len(m.comments[i].Replies)
				m.comments = append(m.comments[:i], m.comments[i+1:]...)
				return removed
			}
		}
		return 0
	}
	for i := range m.comments {
		if m.comments[i].ID != parentID {
			continue
		}
		replies := m.comments[i].Replies
		for j := range replies {
			if replies[j].ID == id {
				m.comments[i].Replies = append(replies[:j], replies[j+1:]...)
				return 1
			}
		}
	}
	return 0
}

func (m *Model) replaceComment(localID, parentID string, real domain.Comment) bool {
	if parentID == "" {
		for i := range m.comments {
			if m.comments[i].ID == localID {
				real.Replies = m.comments[i].Replies
				m.comments[i] = real
				return true
			}
		}
		return false
	}
	for i := range m.comments {
		if m.comments[i].ID != parentID {
			continue
		}
		for j := range m.comments[i].Replies {
			if m.comments[i].Replies[j].ID == localID {
				m.comments[i].Replies[j] = real
				return true
			}
		}
	}
	return false
}

func (m *Model) bumpCommentCount(postID string, delta int) {
	for i := range m.items {
		if m.items[i].Confession.ID == postID {
			m.items[i].Confession.Comments = max(0, m.items[i].Confession.Comments+delta)
		}
	}
	if m.focused != nil && m.focused.ID == postID {
		m.focused.Comments = max(0, m.focused.Comments+delta)
	}
}
