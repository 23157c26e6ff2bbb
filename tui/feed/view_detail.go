package feed

import (
	"fmt"
	"strings"

	"github.com/confide-social/confide/domain"
	"github.com/confide-social/confide/tui/common"
)

func (m Model) viewDetail() string {
	if m.focused == nil {
		return ""
	}
	c := *m.focused
	width := max(30, m.width-6)

	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render("Confide"))
	b.WriteString("\n")

	var post []string
	post = append(post, headerLine(c))
	post = append(post, common.TitleStyle.Render(common.Sanitize(c.DisplayTitle())))
	post = append(post, common.ContentStyle.Render(common.Sanitize(c.Content)))
	if tags := tagsLine(c); tags != "" {
		post = append(post, tags)
	}
	post = append(post, countersLine(c))
	card := strings.Join(post, "\n")
	if m.commentCursor == 0 {
		b.WriteString(common.SelectedStyle.Width(width).Render(card))
	} else {
		b.WriteString(common.UnselectedStyle.Width(width).Render(card))
	}
	b.WriteString("\n")

	b.WriteString(m.viewComments(width))

	if m.commentInput {
		label := "comment"
		if m.replyTo != "" {
			label = "reply"
		}
		b.WriteString("\n " + common.FieldLabelStyle.Render(label+": ") + m.commentBuffer + "▌")
	}
	if m.notice != "" {
		b.WriteString("\n " + common.SuccessStyle.Render(m.notice))
	}
	b.WriteString("\n")
	if m.confirmComment {
		b.WriteString(common.ConfirmStyle.Render("Delete this comment? (y/n)"))
	} else {
		b.WriteString(common.StatusBarStyle.Render(" ↑/↓ move · c comment/reply · l like · d delete own · esc back"))
	}
	return b.String()
}

func (m Model) viewComments(width int) string {
	switch {
	case m.loadingComments && len(m.comments) == 0:
		return "\n " + m.spinner.View() + " loading comments…\n"
	case m.commentErr != nil:
		return "\n " + common.ErrorStyle.Render("Comments unavailable: "+m.commentErr.Error()) + "\n"
	case len(m.comments) == 0:
		return "\n " + common.TimestampStyle.Render("No comments yet. Be the first.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	flat := m.flattenComments()
	for i, ref := range flat {
		var c domain.Comment
		indent := " "
		if ref.replyIdx < 0 {
			c = m.comments[ref.topIdx]
		} else {
			c = m.comments[ref.topIdx].Replies[ref.replyIdx]
			indent = "   ↳ "
		}
		cursor := "  "
		if m.commentCursor == i+1 {
			cursor = common.TabActiveStyle.Render("▸ ")
		}
		name := c.Username
		if name == "" {
			name = "anonymous"
		}
		likes := ""
		if c.Likes > 0 || c.IsLiked {
			likes = fmt.Sprintf(" ♥ %d", c.Likes)
			if c.IsLiked {
				likes = common.LikeActiveStyle.Render(likes)
			}
		}
		pending := ""
		if isLocalID(c.ID) {
			pending = common.TimestampStyle.Render(" (sending…)")
		}
		line := indent + common.AuthorStyle.Render(name) + " " +
			common.TimestampStyle.Render(relativeTime(c.CreatedAt)) + likes + pending
		b.WriteString(cursor + common.Ellipsis(line, width) + "\n")
		content := common.Sanitize(c.Content)
		content = strings.ReplaceAll(content, "\n", " ")
		b.WriteString("  " + indent + common.ContentStyle.Render(common.Ellipsis(content, width-len(indent))) + "\n")
	}
	return b.String()
}
