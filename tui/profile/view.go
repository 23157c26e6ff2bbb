package profile

import (
	"fmt"
	"strings"

	"github.com/confide-social/confide/tui/common"
)

// View renders the profile screen.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render("Profile"))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(" loading…\n")
		return b.String()
	case m.err != nil:
		b.WriteString(" " + common.ErrorStyle.Render("Error: "+m.err.Error()) + "\n")
		b.WriteString(common.StatusBarStyle.Render(" r retry · esc back"))
		return b.String()
	}

	switch m.mode {
	case modeEdit:
		return m.viewEdit(&b)
	case modeAvatar:
		b.WriteString(" " + common.FieldLabelStyle.Render("avatar: ") + m.avatarPath.View() + "\n\n")
		b.WriteString(common.StatusBarStyle.Render(" enter upload · esc cancel"))
		return b.String()
	}

	p := m.profile
	b.WriteString(" " + common.AuthorStyle.Render(p.Username) + "\n")
	if p.Fullname != "" {
		b.WriteString(" " + common.ContentStyle.Render(p.Fullname) + "\n")
	}
	if p.Bio != "" {
		b.WriteString(" " + common.ContentStyle.Render(p.Bio) + "\n")
	}
	for _, row := range []struct{ label, value string }{
		{"email", p.Email},
		{"location", p.Location},
		{"website", p.Website},
		{"twitter", p.Twitter},
		{"instagram", p.Instagram},
	} {
		if row.value != "" {
			b.WriteString(" " + common.MetadataStyle.Render(row.label+": "+row.value) + "\n")
		}
	}
	visibility := "public"
	if p.PrivateProfile {
		visibility = "private"
	}
	b.WriteString(" " + common.MetadataStyle.Render(fmt.Sprintf("profile: %s · %d%% complete", visibility, p.CompletionPercent)) + "\n")

	b.WriteString("\n " + common.TitleStyle.Render("Statistics") + "\n")
	s := m.stats
	b.WriteString(" " + common.MetadataStyle.Render(fmt.Sprintf(
		"posts %d (%d active, %d expired) · likes %d · supports %d · comments %d",
		s.TotalPosts, s.ActivePosts, s.ExpiredPosts, s.TotalLikes, s.TotalSupports, s.TotalComments)) + "\n")

	if m.notice != "" {
		b.WriteString("\n " + common.SuccessStyle.Render(m.notice) + "\n")
	}
	b.WriteString("\n")
	if m.mode == modeConfirmDelete {
		b.WriteString(common.ConfirmStyle.Render("Delete your account and all confessions? (y/n)"))
	} else {
		b.WriteString(common.StatusBarStyle.Render(" e edit · a avatar · D delete account · r refresh · esc back"))
	}
	return b.String()
}

func (m Model) viewEdit(b *strings.Builder) string {
	for i, f := range m.fields {
		marker := "  "
		if i == m.focus {
			marker = common.TabActiveStyle.Render("▸ ")
		}
		b.WriteString(marker + common.FieldLabelStyle.Render(f.label+" ") + f.input.View() + "\n")
	}
	visibility := "public"
	if m.profile.PrivateProfile {
		visibility = "private"
	}
	b.WriteString("  " + common.MetadataStyle.Render("profile: "+visibility+" (ctrl+p toggles)") + "\n\n")
	if m.saving {
		b.WriteString(" saving…\n")
	}
	b.WriteString(common.StatusBarStyle.Render(" enter save · tab next field · esc cancel"))
	return b.String()
}
