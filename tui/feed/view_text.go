package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/confide-social/confide/domain"
	"github.com/confide-social/confide/tui/common"
)

func relativeTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}

func countersLine(c domain.Confession) string {
	like := fmt.Sprintf("♥ %d", c.Likes)
	support := fmt.Sprintf("✊ %d", c.Supports)
	comments := fmt.Sprintf("💬 %d", c.Comments)
	bookmark := "⚑"
	if c.Bookmarked {
		bookmark = common.BookmarkActiveStyle.Render("⚑ saved")
	}
	return common.MetadataStyle.Render(like + "  " + support + "  " + comments + "  " + bookmark)
}

func headerLine(c domain.Confession) string {
	name := c.Username
	if c.DisplayUsername != "" {
		name = c.DisplayUsername
	}
	if name == "" {
		name = "anonymous"
	}
	var b strings.Builder
	b.WriteString(common.AuthorStyle.Render(name))
	if c.IsOwn {
		b.WriteString(common.OwnBadgeStyle.Render("[you]"))
	}
	b.WriteString(" ")
	b.WriteString(common.TimestampStyle.Render(relativeTime(c.CreatedAt)))
	if !c.ExpiresAt.IsZero() {
		b.WriteString(common.TimestampStyle.Render(" · expires " + relativeExpiry(c.ExpiresAt)))
	}
	return b.String()
}

func relativeExpiry(t time.Time) string {
	d := time.Until(t)
	if d <= 0 {
		return "now"
	}
	if d < 24*time.Hour {
		return fmt.Sprintf("in %dh", int(d.Hours())+1)
	}
	return fmt.Sprintf("in %dd", int(d.Hours()/24)+1)
}

func tagsLine(c domain.Confession) string {
	var parts []string
	for _, cat := range c.Categories {
		parts = append(parts, common.CategoryStyle.Render("["+cat+"]"))
	}
	for _, tag := range c.Hashtags {
		parts = append(parts, common.HashtagStyle.Render("#"+tag))
	}
	return strings.Join(parts, " ")
}

func statusLine(it ConfessionItem) string {
	switch it.Status {
	case StatusPendingCreate:
		return common.TimestampStyle.Render("posting…")
	case StatusPendingUpdate:
		return common.TimestampStyle.Render("saving…")
	case StatusPendingDelete:
		return common.TimestampStyle.Render("deleting…")
	case StatusFailed:
		msg := "failed"
		if it.Err != nil {
			msg = "failed: " + it.Err.Error()
		}
		return common.ErrorStyle.Render(msg)
	}
	return ""
}

// renderCard draws one confession in the list.
func (m Model) renderCard(it ConfessionItem, selected bool) string {
	c := it.Confession
	width := max(30, m.width-6)

	var lines []string
	lines = append(lines, headerLine(c))
	lines = append(lines, common.TitleStyle.Render(common.Ellipsis(common.Sanitize(c.DisplayTitle()), width)))
	content := common.Sanitize(c.Content)
	content = strings.ReplaceAll(content, "\n", " ")
	lines = append(lines, common.ContentStyle.Render(common.Ellipsis(content, width)))
	if tags := tagsLine(c); tags != "" {
		lines = append(lines, common.Ellipsis(tags, width))
	}
	meta := countersLine(c)
	if status := statusLine(it); status != "" {
		meta += "  " + status
	}
	lines = append(lines, meta)

	card := strings.Join(lines, "\n")
	if selected {
		return common.SelectedStyle.Width(width).Render(card)
	}
	return common.UnselectedStyle.Width(width).Render(card)
}
