package feed

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/confide-social/confide/domain"
)

// handlePageLoaded folds a fetched page into the list. Responses from a
// superseded request or a different query are dropped so a slow fetch can
// never clobber a newer one.
func (m Model) handlePageLoaded(msg PageLoadedMsg) (Model, tea.Cmd) {
	if msg.ReqSeq != m.reqSeq || msg.QueryKey != m.queryKey() {
		return m, nil
	}

	merged := merge(m.confessionList(), msg.Page.Content, msg.Append)

	// Rows with an unresolved local mutation survive the merge so a refresh
	// cannot silently discard an in-flight create or edit.
	pending := m.pendingItems(merged)
	items := make([]ConfessionItem, 0, len(pending)+len(merged))
	items = append(items, pending...)
	for _, c := range merged {
		items = append(items, ConfessionItem{Confession: c})
	}
	m.items = items

	m.page = msg.PageIndex
	m.totalPages = msg.Page.TotalPages
	m.hasMore = !msg.Page.Last
	m.loading = false
	m.loadingMore = false
	m.err = nil
	if !m.hasMore && msg.Append {
		m.notice = "You're all caught up."
	}

	if !msg.Append {
		m.cursor = 0
		m.startIndex = 0
	}
	m.clampCursor()
	return m, nil
}

func (m Model) handlePageError(msg PageErrorMsg) (Model, tea.Cmd) {
	if msg.ReqSeq != m.reqSeq || msg.QueryKey != m.queryKey() {
		return m, nil
	}
	m.loading = false
	m.loadingMore = false
	// An append failure keeps what is already on screen.
	m.err = msg.Err
	return m, nil
}

// maybeFetchNextPage starts the next page fetch when the cursor nears the
// bottom. At most one page fetch is in flight at a time.
func (m *Model) maybeFetchNextPage() tea.Cmd {
	if m.loading || m.loadingMore || !m.hasMore {
		return nil
	}
	visible := m.visibleIndices()
	pos := -1
	for i, idx := range visible {
		if idx == m.cursor {
			pos = i
			break
		}
	}
	if pos < 0 || len(visible)-pos > sentinelWindow {
		return nil
	}
	m.loadingMore = true
	return m.fetchPage(m.reqSeq, m.page+1)
}

// resetAndFetch discards the list and reloads from page zero under a fresh
// request sequence. Used whenever the query or filters change.
func (m *Model) resetAndFetch() tea.Cmd {
	m.reqSeq++
	m.items = nil
	m.page = 0
	m.totalPages = 0
	m.hasMore = true
	m.cursor = 0
	m.startIndex = 0
	m.loading = true
	m.loadingMore = false
	m.err = nil
	m.notice = ""
	m.closeDetail()
	return m.fetchPage(m.reqSeq, 0)
}

func (m Model) confessionList() []domain.Confession {
	out := make([]domain.Confession, 0, len(m.items))
	for _, it := range m.items {
		if it.Status != StatusNormal {
			continue
		}
		out = append(out, it.Confession)
	}
	return out
}

// pendingItems returns rows with local mutations whose IDs are absent from
// the merged server list.
func (m Model) pendingItems(merged []domain.Confession) []ConfessionItem {
	present := make(map[string]struct{}, len(merged))
	for _, c := range merged {
		present[c.ID] = struct{}{}
	}
	var out []ConfessionItem
	for _, it := range m.items {
		if it.Status == StatusNormal {
			continue
		}
		if _, ok := present[it.Confession.ID]; ok {
			continue
		}
		out = append(out, it)
	}
	return out
}
