package feed

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/confide-social/confide/domain"
)

// visibleIndices returns the item indices that survive the active category
// and search filters, in list order. Rows with a pending local mutation are
// always shown.
func (m Model) visibleIndices() []int {
	out := make([]int, 0, len(m.items))
	for i, it := range m.items {
		if it.Status != StatusNormal || matchesFilter(it.Confession, m.category, m.searchQuery) {
			out = append(out, i)
		}
	}
	return out
}

func (m *Model) moveCursor(delta int) {
	visible := m.visibleIndices()
	if len(visible) == 0 {
		m.cursor = 0
		m.startIndex = 0
		return
	}
	pos := 0
	for i, idx := range visible {
		if idx == m.cursor {
			pos = i
			break
		}
	}
	pos = min(max(pos+delta, 0), len(visible)-1)
	m.cursor = visible[pos]
	m.ensureCursorVisible()
}

// clampCursor snaps the cursor onto a visible row after the list changed.
func (m *Model) clampCursor() {
	visible := m.visibleIndices()
	if len(visible) == 0 {
		m.cursor = 0
		m.startIndex = 0
		return
	}
	for _, idx := range visible {
		if idx == m.cursor {
			m.ensureCursorVisible()
			return
		}
	}
	// Nearest visible row at or before the old position, else the first.
	target := visible[0]
	for _, idx := range visible {
		if idx <= m.cursor {
			target = idx
		}
	}
	m.cursor = target
	m.ensureCursorVisible()
}

// visibleCount is how many confession cards fit in the current window.
func (m Model) visibleCount() int {
	if m.height <= 0 {
		return 5
	}
	return max(1, (m.height-9)/6)
}

// ensureCursorVisible scrolls the window so the cursor's row is on screen.
func (m *Model) ensureCursorVisible() {
	visible := m.visibleIndices()
	pos := 0
	for i, idx := range visible {
		if idx == m.cursor {
			pos = i
			break
		}
	}
	count := m.visibleCount()
	if pos < m.startIndex {
		m.startIndex = pos
	}
	if pos >= m.startIndex+count {
		m.startIndex = pos - count + 1
	}
	m.startIndex = max(0, min(m.startIndex, max(0, len(visible)-count)))
}

func (m *Model) openDetail() tea.Cmd {
	if len(m.items) == 0 || m.cursor < 0 || m.cursor >= len(m.items) {
		return nil
	}
	it := m.items[m.cursor]
	if it.Status == StatusPendingCreate || it.Status == StatusFailed {
		return nil
	}
	c := it.Confession
	m.showDetail = true
	m.focused = &c
	m.commentCursor = 0
	m.commentErr = nil
	m.commentInput = false
	m.replyTo = ""

	if cached, ok := m.treeCache.Get(c.ID); ok {
		m.comments = cached
		m.loadingComments = false
		// Still refresh in the background so the cache never goes stale.
		return m.fetchCommentTree(c.ID)
	}
	m.comments = nil
	m.loadingComments = true
	return m.fetchCommentTree(c.ID)
}

func (m *Model) closeDetail() {
	m.showDetail = false
	m.focused = nil
	m.comments = nil
	m.commentCursor = 0
	m.loadingComments = false
	m.commentErr = nil
	m.commentInput = false
	m.confirmComment = false
	m.commentBuffer = ""
	m.replyTo = ""
}

// commentRef addresses one row in the flattened comment list.
type commentRef struct {
	topIdx   int
	replyIdx int // -1 for a top-level comment
}

// flattenComments lists every comment row in display order, replies directly
// under their parent.
func (m Model) flattenComments() []commentRef {
	var out []commentRef
	for i := range m.comments {
		out = append(out, commentRef{topIdx: i, replyIdx: -1})
		for j := range m.comments[i].Replies {
			out = append(out, commentRef{topIdx: i, replyIdx: j})
		}
	}
	return out
}

// selectedComment returns the comment under the cursor, if the cursor is on
// a comment row rather than the post itself.
func (m Model) selectedComment() (domain.Comment, bool) {
	if m.commentCursor == 0 {
		return domain.Comment{}, false
	}
	flat := m.flattenComments()
	idx := m.commentCursor - 1
	if idx < 0 || idx >= len(flat) {
		return domain.Comment{}, false
	}
	ref := flat[idx]
	if ref.replyIdx < 0 {
		return m.comments[ref.topIdx], true
	}
	return m.comments[ref.topIdx].Replies[ref.replyIdx], true
}

func (m *Model) clampCommentCursor() {
	limit := len(m.flattenComments())
	m.commentCursor = min(max(m.commentCursor, 0), limit)
}

func (m Model) nextSource() feedSource {
	switch m.source {
	case sourceFeed:
		return sourceForYou
	case sourceForYou:
		return sourceBookmarks
	case sourceBookmarks:
		return sourceMine
	default:
		return sourceFeed
	}
}

// cycleCategory advances the filter through all known categories and back
// to "all".
func (m Model) cycleCategory() string {
	if m.category == "" {
		return domain.Categories[0]
	}
	for i, cat := range domain.Categories {
		if cat == m.category {
			if i == len(domain.Categories)-1 {
				return ""
			}
			return domain.Categories[i+1]
		}
	}
	return ""
}

func (m Model) prefsChanged() tea.Cmd {
	source := m.source.String()
	category := m.category
	sortBy := m.sortBy
	return func() tea.Msg {
		return PrefsChangedMsg{Source: source, Category: category, SortBy: sortBy}
	}
}
