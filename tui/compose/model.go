package compose

import (
	"os/exec"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/confide-social/confide/app"
	"github.com/confide-social/confide/domain"
)

const maxContentLen = 2000

// Editor prepares the external editor command. The model runs it through
// tea.ExecProcess so Bubble Tea suspends raw terminal mode around it.
type Editor interface {
	Cmd(content string) (*exec.Cmd, string, error)
	ReadContent(path string) (string, error)
}

// DoneMsg signals that composing finished. Canceled means the user backed
// out; Err means the external editor failed.
type DoneMsg struct {
	Draft    app.Draft
	PostID   string // Set when editing an existing confession
	IsEdit   bool
	Canceled bool
	Err      error
}

// editorFinishedMsg is sent after the external editor exits.
type editorFinishedMsg struct {
	tmpPath string
	err     error
}

type step int

const (
	stepBody step = iota
	stepMeta
)

// Model drives composing a confession, either through $EDITOR or an inline
// textarea, followed by a metadata step for title, category and expiry.
type Model struct {
	editor Editor
	inline bool
	step   step

	body  textarea.Model
	title textinput.Model

	categoryIdx int // -1 means none
	expiry      domain.ExpiryDuration

	postID         string
	isEdit         bool
	initialContent string

	width int
	err   error
}

// New creates a composer for a fresh confession.
func New(editor Editor, inline bool) Model {
	return newModel(editor, inline, "", app.Draft{})
}

// NewEdit creates a composer pre-filled from an existing confession.
func NewEdit(editor Editor, inline bool, c domain.Confession) Model {
	draft := app.Draft{
		Title:      c.Title,
		Content:    c.Content,
		Categories: c.Categories,
		Expiry:     c.ExpiryDuration,
	}
	m := newModel(editor, inline, c.ID, draft)
	m.isEdit = true
	return m
}

func newModel(editor Editor, inline bool, postID string, draft app.Draft) Model {
	body := textarea.New()
	body.Placeholder = "What can't you say out loud?"
	body.CharLimit = maxContentLen
	body.SetValue(draft.Content)
	body.Focus()

	title := textinput.New()
	title.Placeholder = "optional title"
	title.CharLimit = 120
	title.SetValue(draft.Title)

	categoryIdx := -1
	if len(draft.Categories) > 0 {
		for i, cat := range domain.Categories {
			if strings.EqualFold(cat, draft.Categories[0]) {
				categoryIdx = i
				break
			}
		}
	}
	expiry := draft.Expiry
	if expiry == "" {
		expiry = domain.ExpiryNever
	}

	return Model{
		editor:         editor,
		inline:         inline,
		body:           body,
		title:          title,
		categoryIdx:    categoryIdx,
		expiry:         expiry,
		postID:         postID,
		initialContent: draft.Content,
	}
}

// Init launches the external editor in editor mode; inline mode waits for
// input.
func (m Model) Init() tea.Cmd {
	if m.inline {
		return textarea.Blink
	}
	return m.launchEditor()
}

// launchEditor prepares the editor command and runs it via tea.ExecProcess
// so the editor gets the terminal to itself.
func (m Model) launchEditor() tea.Cmd {
	cmd, tmpPath, err := m.editor.Cmd(m.initialContent)
	if err != nil {
		return func() tea.Msg { return editorFinishedMsg{err: err} }
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{tmpPath: tmpPath, err: err}
	})
}

// Update handles composer messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.body.SetWidth(max(20, msg.Width-4))
		return m, nil

	case editorFinishedMsg:
		return m.handleEditorFinished(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleEditorFinished(msg editorFinishedMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		return m, done(DoneMsg{Err: msg.err})
	}
	content, err := m.editor.ReadContent(msg.tmpPath)
	if err != nil {
		return m, done(DoneMsg{Err: err})
	}
	// An emptied file, or an unchanged one when editing, cancels.
	if content == "" || (m.isEdit && content == strings.TrimSpace(m.initialContent)) {
		return m, done(DoneMsg{Canceled: true})
	}
	m.body.SetValue(content)
	m.step = stepMeta
	return m, m.title.Focus()
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return m, done(DoneMsg{Canceled: true})
	}

	if m.step == stepBody {
		if msg.Type == tea.KeyCtrlD {
			if strings.TrimSpace(m.body.Value()) == "" {
				m.err = domain.ErrEmptyConfession
				return m, nil
			}
			m.step = stepMeta
			return m, m.title.Focus()
		}
		var cmd tea.Cmd
		m.body, cmd = m.body.Update(msg)
		return m, cmd
	}

	// Metadata step.
	switch msg.Type {
	case tea.KeyEnter:
		return m, done(m.buildDone())
	case tea.KeyCtrlT:
		m.categoryIdx++
		if m.categoryIdx >= len(domain.Categories) {
			m.categoryIdx = -1
		}
		return m, nil
	case tea.KeyCtrlE:
		m.expiry = nextExpiry(m.expiry)
		return m, nil
	}
	var cmd tea.Cmd
	m.title, cmd = m.title.Update(msg)
	return m, cmd
}

func (m Model) buildDone() DoneMsg {
	draft := app.Draft{
		Title:   strings.TrimSpace(m.title.Value()),
		Content: strings.TrimSpace(m.body.Value()),
		Expiry:  m.expiry,
	}
	if m.categoryIdx >= 0 {
		draft.Categories = []string{domain.Categories[m.categoryIdx]}
	}
	draft.Hashtags = domain.ExtractHashtags(draft.Content)
	return DoneMsg{Draft: draft, PostID: m.postID, IsEdit: m.isEdit}
}

func nextExpiry(e domain.ExpiryDuration) domain.ExpiryDuration {
	switch e {
	case domain.ExpiryNever:
		return domain.ExpiryHours24
	case domain.ExpiryHours24:
		return domain.ExpiryDays7
	default:
		return domain.ExpiryNever
	}
}

func done(msg DoneMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}
