package auth

import (
	"strings"

	"github.com/confide-social/confide/tui/common"
)

// View renders the sign-in or registration form.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render("Confide"))
	b.WriteString(common.TaglineStyle.Render(" share what you can't say out loud"))
	b.WriteString("\n\n")

	if m.mode == modeSignIn {
		b.WriteString(" " + common.TitleStyle.Render("Sign in") + "\n\n")
	} else {
		b.WriteString(" " + common.TitleStyle.Render("Create an account") + "\n\n")
	}

	b.WriteString(m.fieldRow("username", m.username.View(), fieldUsername))
	if m.mode == modeRegister {
		b.WriteString(m.fieldRow("email   ", m.email.View(), fieldEmail))
	}
	b.WriteString(m.fieldRow("password", m.password.View(), fieldPassword))

	if m.mode == modeSignIn {
		check := "[ ]"
		if m.remember {
			check = "[x]"
		}
		b.WriteString(" " + common.MetadataStyle.Render(check+" remember me (ctrl+b)") + "\n")
	}
	b.WriteString("\n")

	switch {
	case m.submitting:
		b.WriteString(" signing in…\n")
	case m.errMsg != "":
		b.WriteString(" " + common.ErrorStyle.Render(m.errMsg) + "\n")
	case m.notice != "":
		b.WriteString(" " + common.SuccessStyle.Render(m.notice) + "\n")
	}

	toggle := "ctrl+r register instead"
	if m.mode == modeRegister {
		toggle = "ctrl+r sign in instead"
	}
	b.WriteString(common.StatusBarStyle.Render(" enter submit · tab next field · " + toggle + " · ctrl+c quit"))
	return b.String()
}

func (m Model) fieldRow(label, input string, field int) string {
	row := " " + common.FieldLabelStyle.Render(label+" ") + input
	if msg, ok := m.fieldErrs[field]; ok {
		row += "  " + common.FieldErrorStyle.Render(msg)
	}
	return row + "\n"
}
