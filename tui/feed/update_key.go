package feed

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/confide-social/confide/domain"
)

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.showAllHints {
		m.showAllHints = false
		return m, nil
	}
	if m.searchInput {
		return m.handleSearchKey(msg)
	}
	if m.commentInput {
		return m.handleCommentInputKey(msg)
	}
	if m.confirmDelete {
		return m.handleConfirmDeleteKey(msg)
	}
	if m.confirmComment {
		return m.handleConfirmCommentKey(msg)
	}
	if m.showDetail {
		return m.handleDetailKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.notice = ""
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, m.maybeFetchNextPage()

	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
		m.startIndex = 0
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.resetAndFetch()

	case key.Matches(msg, m.keys.SwitchFeed):
		m.source = m.nextSource()
		return m, tea.Batch(m.resetAndFetch(), m.prefsChanged())

	case key.Matches(msg, m.keys.Sort):
		if m.source != sourceFeed {
			return m, nil
		}
		if m.sortBy == sortLatest {
			m.sortBy = sortTrending
		} else {
			m.sortBy = sortLatest
		}
		return m, tea.Batch(m.resetAndFetch(), m.prefsChanged())

	case key.Matches(msg, m.keys.Category):
		m.category = m.cycleCategory()
		return m, tea.Batch(m.resetAndFetch(), m.prefsChanged())

	case key.Matches(msg, m.keys.Search):
		m.searchInput = true
		m.searchBuffer = m.searchQuery
		return m, nil

	case key.Matches(msg, m.keys.ToggleExpired):
		if m.source != sourceMine {
			return m, nil
		}
		m.includeExpired = !m.includeExpired
		return m, m.resetAndFetch()

	case key.Matches(msg, m.keys.Like):
		if c, ok := m.SelectedConfession(); ok && !isLocalID(c.ID) {
			return m, m.react(c.ID, domain.ReactionLike)
		}
		return m, nil

	case key.Matches(msg, m.keys.Support):
		if c, ok := m.SelectedConfession(); ok && !isLocalID(c.ID) {
			return m, m.react(c.ID, domain.ReactionSupport)
		}
		return m, nil

	case key.Matches(msg, m.keys.Bookmark):
		if c, ok := m.SelectedConfession(); ok && !isLocalID(c.ID) {
			return m, m.react(c.ID, domain.ReactionBookmark)
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		return m.startEdit(false)

	case key.Matches(msg, m.keys.Delete):
		if c, ok := m.SelectedConfession(); ok && c.IsOwn && !isLocalID(c.ID) {
			m.confirmDelete = true
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleHints):
		m.showAllHints = true
		return m, nil

	case msg.Type == tea.KeyEnter:
		cmd := m.openDetail()
		return m, cmd

	case msg.Type == tea.KeyEsc:
		if m.searchQuery != "" {
			m.searchQuery = ""
			return m, m.resetAndFetch()
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.notice = ""
	switch {
	case msg.Type == tea.KeyEsc:
		m.closeDetail()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.commentCursor = max(0, m.commentCursor-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.commentCursor = min(len(m.flattenComments()), m.commentCursor+1)
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		if m.focused != nil {
			m.loadingComments = true
			return m, m.fetchCommentTree(m.focused.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Like):
		if c, ok := m.selectedComment(); ok {
			if isLocalID(c.ID) {
				return m, nil
			}
			return m, m.toggleCommentLike(c.ID)
		}
		if m.focused != nil {
			return m, m.react(m.focused.ID, domain.ReactionLike)
		}
		return m, nil

	case key.Matches(msg, m.keys.Support):
		if m.commentCursor == 0 && m.focused != nil {
			return m, m.react(m.focused.ID, domain.ReactionSupport)
		}
		return m, nil

	case key.Matches(msg, m.keys.Bookmark):
		if m.commentCursor == 0 && m.focused != nil {
			return m, m.react(m.focused.ID, domain.ReactionBookmark)
		}
		return m, nil

	case key.Matches(msg, m.keys.Comment):
		// On the post: new top-level comment. On a top-level comment: reply.
		// Replies cannot be replied to, the tree is two levels deep.
		if c, ok := m.selectedComment(); ok {
			if c.IsReply() || isLocalID(c.ID) {
				return m, nil
			}
			m.replyTo = c.ID
		} else {
			m.replyTo = ""
		}
		m.commentInput = true
		m.commentBuffer = ""
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if c, ok := m.selectedComment(); ok && !isLocalID(c.ID) {
			m.confirmComment = true
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if m.commentCursor == 0 {
			return m.startEdit(false)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searchInput = false
		m.searchBuffer = ""
		return m, nil
	case tea.KeyEnter:
		m.searchInput = false
		query := strings.TrimSpace(m.searchBuffer)
		if query == m.searchQuery {
			return m, nil
		}
		m.searchQuery = query
		return m, m.resetAndFetch()
	case tea.KeyBackspace:
		if len(m.searchBuffer) > 0 {
			runes := []rune(m.searchBuffer)
			m.searchBuffer = string(runes[:len(runes)-1])
		}
		return m, nil
	case tea.KeySpace:
		m.searchBuffer += " "
		return m, nil
	case tea.KeyRunes:
		m.searchBuffer += string(msg.Runes)
		return m, nil
	}
	return m, nil
}

func (m Model) handleCommentInputKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.commentInput = false
		m.commentBuffer = ""
		m.replyTo = ""
		return m, nil
	case tea.KeyEnter:
		cmd := m.submitComment()
		return m, cmd
	case tea.KeyBackspace:
		if len(m.commentBuffer) > 0 {
			runes := []rune(m.commentBuffer)
			m.commentBuffer = string(runes[:len(runes)-1])
		}
		return m, nil
	case tea.KeySpace:
		m.commentBuffer += " "
		return m, nil
	case tea.KeyRunes:
		if len([]rune(m.commentBuffer))+len(msg.Runes) > maxCommentLen {
			return m, nil
		}
		m.commentBuffer += string(msg.Runes)
		return m, nil
	}
	return m, nil
}

func (m Model) handleConfirmDeleteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.confirmDelete = false
	if msg.String() != "y" && msg.String() != "Y" {
		return m, nil
	}
	c, ok := m.SelectedConfession()
	if !ok || !c.IsOwn {
		return m, nil
	}
	for i := range m.items {
		if m.items[i].Confession.ID == c.ID {
			m.items[i].Status = StatusPendingDelete
			break
		}
	}
	id := c.ID
	return m, func() tea.Msg { return DeleteConfessionMsg{ID: id} }
}

func (m Model) handleConfirmCommentKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.confirmComment = false
	if msg.String() != "y" && msg.String() != "Y" {
		return m, nil
	}
	c, ok := m.selectedComment()
	if !ok {
		return m, nil
	}
	return m, m.removeComment(c.ID, c.ParentID)
}

func (m Model) startEdit(useInline bool) (Model, tea.Cmd) {
	c, ok := m.SelectedConfession()
	if !ok || !c.IsOwn || isLocalID(c.ID) {
		return m, nil
	}
	conf := c
	return m, func() tea.Msg {
		return EditConfessionMsg{Confession: conf, UseInline: useInline}
	}
}

func isLocalID(id string) bool {
	return strings.HasPrefix(id, "local-")
}
