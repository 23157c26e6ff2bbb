package feed

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/confide-social/confide/domain"
)

// handleReactResult applies the server's counters to every copy of the
// confession the model holds. Nothing changes on failure; the displayed
// counters never guessed.
func (m Model) handleReactResult(msg ReactResultMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		m.notice = "Reaction failed: " + msg.Err.Error()
		return m, nil
	}

	m.patchConfession(msg.ID, msg.Update)

	// Removing a bookmark while browsing bookmarks drops the row.
	if m.source == sourceBookmarks && msg.Kind == domain.ReactionBookmark && !msg.Update.Bookmarked {
		m.removeItem(msg.ID)
		if m.focused != nil && m.focused.ID == msg.ID {
			m.closeDetail()
		}
	}
	return m, nil
}

// patchConfession updates reaction counters on the list row and the detail
// view copy, wherever the ID appears.
func (m *Model) patchConfession(id string, u domain.ReactionUpdate) {
	for i := range m.items {
		if m.items[i].Confession.ID == id {
			applyUpdate(&m.items[i].Confession, u)
		}
	}
	if m.focused != nil && m.focused.ID == id {
		applyUpdate(m.focused, u)
	}
}

func applyUpdate(c *domain.Confession, u domain.ReactionUpdate) {
	c.Likes = u.Likes
	c.Supports = u.Supports
	c.Comments = u.Comments
	c.Bookmarked = u.Bookmarked
}

func (m *Model) removeItem(id string) {
	for i := range m.items {
		if m.items[i].Confession.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			break
		}
	}
	m.clampCursor()
}
