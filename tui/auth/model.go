package auth

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/confide-social/confide/app"
)

// DoneMsg signals a successful sign-in.
type DoneMsg struct {
	Session app.Session
}

type resultMsg struct {
	session    app.Session
	registered bool
	err        error
}

type mode int

const (
	modeSignIn mode = iota
	modeRegister
)

const (
	fieldUsername = iota
	fieldEmail
	fieldPassword
)

// Model drives the sign-in and registration forms.
type Model struct {
	auth app.AuthService
	mode mode

	username textinput.Model
	email    textinput.Model
	password textinput.Model
	focus    int

	remember   bool
	submitting bool
	fieldErrs  map[int]string
	errMsg     string
	notice     string
}

// New creates the auth model in sign-in mode.
func New(auth app.AuthService) Model {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Focus()

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 128

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return Model{
		auth:      auth,
		username:  username,
		email:     email,
		password:  password,
		fieldErrs: map[int]string{},
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles auth view messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		if msg.registered {
			// Account created; sign in with the same credentials.
			m.mode = modeSignIn
			m.notice = "Account created. Welcome."
			m.submitting = true
			return m, m.signIn()
		}
		session := msg.session
		return m, func() tea.Msg { return DoneMsg{Session: session} }

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	switch msg.Type {
	case tea.KeyTab, tea.KeyDown:
		m.moveFocus(1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.moveFocus(-1)
		return m, nil
	case tea.KeyCtrlR:
		if m.mode == modeSignIn {
			m.mode = modeRegister
		} else {
			m.mode = modeSignIn
		}
		m.fieldErrs = map[int]string{}
		m.errMsg = ""
		return m, nil
	case tea.KeyCtrlB:
		m.remember = !m.remember
		return m, nil
	case tea.KeyEnter:
		return m.submit()
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldUsername:
		m.username, cmd = m.username.Update(msg)
	case fieldEmail:
		m.email, cmd = m.email.Update(msg)
	case fieldPassword:
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m *Model) moveFocus(delta int) {
	fields := []int{fieldUsername, fieldPassword}
	if m.mode == modeRegister {
		fields = []int{fieldUsername, fieldEmail, fieldPassword}
	}
	pos := 0
	for i, f := range fields {
		if f == m.focus {
			pos = i
			break
		}
	}
	pos = (pos + delta + len(fields)) % len(fields)
	m.focus = fields[pos]

	m.username.Blur()
	m.email.Blur()
	m.password.Blur()
	switch m.focus {
	case fieldUsername:
		m.username.Focus()
	case fieldEmail:
		m.email.Focus()
	case fieldPassword:
		m.password.Focus()
	}
}

// submit validates locally first; no request leaves while a field is invalid.
func (m Model) submit() (Model, tea.Cmd) {
	m.fieldErrs = map[int]string{}
	m.errMsg = ""

	username := strings.TrimSpace(m.username.Value())
	email := strings.TrimSpace(m.email.Value())
	password := m.password.Value()

	if username == "" {
		m.fieldErrs[fieldUsername] = "required"
	}
	if password == "" {
		m.fieldErrs[fieldPassword] = "required"
	}
	if m.mode == modeRegister {
		if email == "" || !strings.Contains(email, "@") {
			m.fieldErrs[fieldEmail] = "valid email required"
		}
		if len(password) > 0 && len(password) < 8 {
			m.fieldErrs[fieldPassword] = "at least 8 characters"
		}
	}
	if len(m.fieldErrs) > 0 {
		return m, nil
	}

	m.submitting = true
	if m.mode == modeRegister {
		return m, m.register()
	}
	return m, m.signIn()
}

func (m Model) signIn() tea.Cmd {
	auth := m.auth
	username := strings.TrimSpace(m.username.Value())
	password := m.password.Value()
	remember := m.remember
	return func() tea.Msg {
		session, err := auth.SignIn(context.Background(), username, password, remember)
		return resultMsg{session: session, err: err}
	}
}

func (m Model) register() tea.Cmd {
	auth := m.auth
	username := strings.TrimSpace(m.username.Value())
	email := strings.TrimSpace(m.email.Value())
	password := m.password.Value()
	return func() tea.Msg {
		err := auth.Register(context.Background(), username, email, password)
		return resultMsg{registered: true, err: err}
	}
}
