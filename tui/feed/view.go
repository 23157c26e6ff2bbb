package feed

import (
	"strings"

	"github.com/confide-social/confide/tui/common"
)

// View renders the feed. The detail view takes over the whole screen when a
// confession is open.
func (m Model) View() string {
	if m.showDetail {
		return m.viewDetail()
	}

	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render("Confide"))
	b.WriteString(common.TaglineStyle.Render(" share what you can't say out loud"))
	b.WriteString("\n")
	b.WriteString(m.viewTabs())
	b.WriteString("\n")
	b.WriteString(m.viewFilters())
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString("\n " + m.spinner.View() + " loading confessions…\n")
	case m.err != nil:
		b.WriteString("\n " + common.ErrorStyle.Render("Error: "+m.err.Error()) + "\n")
		b.WriteString(common.StatusBarStyle.Render(" r retry · q quit"))
		return b.String()
	default:
		b.WriteString(m.viewList())
	}

	if m.notice != "" {
		b.WriteString("\n " + common.SuccessStyle.Render(m.notice))
	}
	b.WriteString("\n")
	b.WriteString(m.viewStatusBar())

	if m.showAllHints {
		b.WriteString("\n")
		b.WriteString(m.viewAllHints())
	}
	return b.String()
}

func (m Model) viewTabs() string {
	labels := []struct {
		source feedSource
		label  string
	}{
		{sourceFeed, "Feed"},
		{sourceForYou, "For You"},
		{sourceBookmarks, "Bookmarks"},
		{sourceMine, "My Posts"},
	}
	var parts []string
	for _, l := range labels {
		if l.source == m.source {
			parts = append(parts, common.TabActiveStyle.Render("● "+l.label))
		} else {
			parts = append(parts, common.TabInactiveStyle.Render(l.label))
		}
	}
	return " " + strings.Join(parts, " ")
}

func (m Model) viewFilters() string {
	var parts []string
	if m.source == sourceFeed {
		parts = append(parts, "sort: "+m.sortBy)
	}
	if m.category != "" {
		parts = append(parts, "category: "+m.category)
	}
	if m.searchInput {
		parts = append(parts, "search: "+m.searchBuffer+"▌")
	} else if m.searchQuery != "" {
		parts = append(parts, "search: "+m.searchQuery)
	}
	if m.source == sourceMine && m.includeExpired {
		parts = append(parts, "incl. expired")
	}
	if len(parts) == 0 {
		return ""
	}
	return common.MetadataStyle.Render(" " + strings.Join(parts, " · "))
}

func (m Model) viewList() string {
	visible := m.visibleIndices()
	if len(visible) == 0 {
		if m.searchQuery != "" || m.category != "" {
			return "\n " + common.TimestampStyle.Render("Nothing matches the current filters.") + "\n"
		}
		return "\n " + common.TimestampStyle.Render("Nothing here yet.") + "\n"
	}

	count := m.visibleCount()
	start := min(m.startIndex, max(0, len(visible)-1))
	end := min(start+count, len(visible))

	var b strings.Builder
	for _, idx := range visible[start:end] {
		b.WriteString(m.renderCard(m.items[idx], idx == m.cursor))
		b.WriteString("\n")
	}
	if m.loadingMore {
		b.WriteString(" " + m.spinner.View() + " loading more…\n")
	}
	return b.String()
}

func (m Model) viewStatusBar() string {
	if m.confirmDelete {
		return common.ConfirmStyle.Render("Delete this confession? (y/n)")
	}
	hints := "↑/↓ move · enter open · l like · s support · b bookmark · tab switch · ? more"
	return common.StatusBarStyle.Render(" " + hints)
}

func (m Model) viewAllHints() string {
	lines := []string{
		"p  confess ($EDITOR)      P  confess (inline)",
		"e  edit own               d  delete own",
		"c  category filter        /  search",
		"o  sort latest/trending   x  include expired (my posts)",
		"u  profile                ctrl+l  sign out",
		"r  refresh                g  top",
	}
	return common.MetadataStyle.Render(" " + strings.Join(lines, "\n "))
}
