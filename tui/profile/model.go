package profile

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/confide-social/confide/app"
	"github.com/confide-social/confide/domain"
)

// CloseMsg asks the root model to return to the feed.
type CloseMsg struct{}

// AccountDeletedMsg tells the root model the account is gone and the
// session is over.
type AccountDeletedMsg struct{}

type loadedMsg struct {
	profile domain.Profile
	stats   domain.Statistics
	err     error
}

type savedMsg struct {
	profile domain.Profile
	err     error
}

type avatarMsg struct {
	url string
	err error
}

type deletedMsg struct {
	err error
}

type mode int

const (
	modeView mode = iota
	modeEdit
	modeAvatar
	modeConfirmDelete
)

type editField struct {
	label string
	input textinput.Model
	set   func(*domain.Profile, string)
}

// Model drives the profile view: stats, editable fields, avatar upload and
// account deletion.
type Model struct {
	account app.AccountService
	mode    mode

	loading bool
	profile domain.Profile
	stats   domain.Statistics
	err     error
	notice  string

	fields []editField
	focus  int

	avatarPath textinput.Model
	saving     bool
}

// New creates the profile model. Init loads the profile and statistics.
func New(account app.AccountService) Model {
	avatar := textinput.New()
	avatar.Placeholder = "path to image file"
	avatar.CharLimit = 256

	return Model{
		account:    account,
		loading:    true,
		avatarPath: avatar,
	}
}

func (m Model) Init() tea.Cmd {
	return m.load()
}

func (m Model) load() tea.Cmd {
	account := m.account
	return func() tea.Msg {
		ctx := context.Background()
		profile, err := account.CurrentProfile(ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		stats, err := account.Statistics(ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{profile: profile, stats: stats}
	}
}

// Update handles profile view messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.profile = msg.profile
		m.stats = msg.stats
		return m, nil

	case savedMsg:
		m.saving = false
		if msg.err != nil {
			m.notice = "Save failed: " + msg.err.Error()
			return m, nil
		}
		m.profile = msg.profile
		m.mode = modeView
		m.notice = "Profile saved."
		return m, nil

	case avatarMsg:
		m.saving = false
		if msg.err != nil {
			m.notice = "Upload failed: " + msg.err.Error()
			return m, nil
		}
		m.profile.ProfilePictureURL = msg.url
		m.mode = modeView
		m.notice = "Avatar updated."
		return m, nil

	case deletedMsg:
		m.saving = false
		if msg.err != nil {
			m.mode = modeView
			m.notice = "Delete failed: " + msg.err.Error()
			return m, nil
		}
		return m, func() tea.Msg { return AccountDeletedMsg{} }

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.saving {
		return m, nil
	}
	switch m.mode {
	case modeEdit:
		return m.handleEditKey(msg)
	case modeAvatar:
		return m.handleAvatarKey(msg)
	case modeConfirmDelete:
		m.mode = modeView
		if msg.String() == "y" || msg.String() == "Y" {
			m.saving = true
			return m, m.deleteAccount()
		}
		return m, nil
	}

	switch msg.String() {
	case "esc", "q":
		return m, func() tea.Msg { return CloseMsg{} }
	case "r":
		m.loading = true
		return m, m.load()
	case "e":
		m.enterEdit()
		return m, nil
	case "a":
		m.mode = modeAvatar
		m.avatarPath.SetValue("")
		return m, m.avatarPath.Focus()
	case "D":
		m.mode = modeConfirmDelete
		return m, nil
	}
	return m, nil
}

func (m *Model) enterEdit() {
	p := m.profile
	m.fields = []editField{
		newField("fullname ", p.Fullname, func(p *domain.Profile, v string) { p.Fullname = v }),
		newField("bio      ", p.Bio, func(p *domain.Profile, v string) { p.Bio = v }),
		newField("location ", p.Location, func(p *domain.Profile, v string) { p.Location = v }),
		newField("website  ", p.Website, func(p *domain.Profile, v string) { p.Website = v }),
		newField("phone    ", p.Phone, func(p *domain.Profile, v string) { p.Phone = v }),
		newField("twitter  ", p.Twitter, func(p *domain.Profile, v string) { p.Twitter = v }),
		newField("instagram", p.Instagram, func(p *domain.Profile, v string) { p.Instagram = v }),
	}
	m.focus = 0
	m.fields[0].input.Focus()
	m.mode = modeEdit
}

func newField(label, value string, set func(*domain.Profile, string)) editField {
	in := textinput.New()
	in.CharLimit = 256
	in.SetValue(value)
	return editField{label: label, input: in, set: set}
}

func (m Model) handleEditKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeView
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		m.moveFocus(1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.moveFocus(-1)
		return m, nil
	case tea.KeyCtrlP:
		m.profile.PrivateProfile = !m.profile.PrivateProfile
		return m, nil
	case tea.KeyEnter:
		updated := m.profile
		for _, f := range m.fields {
			f.set(&updated, strings.TrimSpace(f.input.Value()))
		}
		m.saving = true
		return m, m.save(updated)
	}
	var cmd tea.Cmd
	m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
	return m, cmd
}

func (m *Model) moveFocus(delta int) {
	m.fields[m.focus].input.Blur()
	m.focus = (m.focus + delta + len(m.fields)) % len(m.fields)
	m.fields[m.focus].input.Focus()
}

func (m Model) handleAvatarKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeView
		return m, nil
	case tea.KeyEnter:
		path := strings.TrimSpace(m.avatarPath.Value())
		if path == "" {
			return m, nil
		}
		m.saving = true
		return m, m.uploadAvatar(path)
	}
	var cmd tea.Cmd
	m.avatarPath, cmd = m.avatarPath.Update(msg)
	return m, cmd
}

func (m Model) save(p domain.Profile) tea.Cmd {
	account := m.account
	return func() tea.Msg {
		saved, err := account.UpdateProfile(context.Background(), p)
		return savedMsg{profile: saved, err: err}
	}
}

func (m Model) uploadAvatar(path string) tea.Cmd {
	account := m.account
	return func() tea.Msg {
		url, err := account.UploadAvatar(context.Background(), path)
		return avatarMsg{url: url, err: err}
	}
}

func (m Model) deleteAccount() tea.Cmd {
	account := m.account
	return func() tea.Msg {
		return deletedMsg{err: account.DeleteAccount(context.Background())}
	}
}
