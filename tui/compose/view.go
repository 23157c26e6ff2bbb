package compose

import (
	"strings"

	"github.com/confide-social/confide/domain"
	"github.com/confide-social/confide/tui/common"
)

// View renders the composer.
func (m Model) View() string {
	var b strings.Builder
	heading := "New confession"
	if m.isEdit {
		heading = "Edit confession"
	}
	b.WriteString(common.AppTitleStyle.Render(heading))
	b.WriteString("\n\n")

	if m.step == stepBody {
		if !m.inline {
			b.WriteString(" waiting for your editor…\n")
			b.WriteString(common.StatusBarStyle.Render(" esc cancel"))
			return b.String()
		}
		b.WriteString(m.body.View())
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString(" " + common.ErrorStyle.Render(m.err.Error()) + "\n")
		}
		b.WriteString(common.StatusBarStyle.Render(" ctrl+d continue · esc cancel"))
		return b.String()
	}

	b.WriteString(" " + common.FieldLabelStyle.Render("title:    ") + m.title.View() + "\n")
	b.WriteString(" " + common.FieldLabelStyle.Render("category: ") + m.categoryLabel() + "\n")
	b.WriteString(" " + common.FieldLabelStyle.Render("expires:  ") + expiryLabel(m.expiry) + "\n\n")

	preview := strings.ReplaceAll(m.body.Value(), "\n", " ")
	b.WriteString(" " + common.ContentStyle.Render(common.Ellipsis(preview, max(30, m.width-4))) + "\n")
	if tags := domain.ExtractHashtags(m.body.Value()); len(tags) > 0 {
		b.WriteString(" " + common.HashtagStyle.Render("#"+strings.Join(tags, " #")) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(common.StatusBarStyle.Render(" enter post · ctrl+t category · ctrl+e expiry · esc cancel"))
	return b.String()
}

func (m Model) categoryLabel() string {
	if m.categoryIdx < 0 {
		return common.TimestampStyle.Render("none")
	}
	return common.CategoryStyle.Render(domain.Categories[m.categoryIdx])
}

func expiryLabel(e domain.ExpiryDuration) string {
	switch e {
	case domain.ExpiryHours24:
		return "24 hours"
	case domain.ExpiryDays7:
		return "7 days"
	default:
		return "never"
	}
}
