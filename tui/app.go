package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/confide-social/confide/app"
	"github.com/confide-social/confide/domain"
	"github.com/confide-social/confide/tui/auth"
	"github.com/confide-social/confide/tui/common"
	"github.com/confide-social/confide/tui/compose"
	"github.com/confide-social/confide/tui/feed"
	"github.com/confide-social/confide/tui/profile"
)

type view int

const (
	viewLoading view = iota
	viewAuth
	viewFeed
	viewCompose
	viewProfile
)

type sessionState int

const (
	sessionUnknown sessionState = iota
	sessionAuthenticated
	sessionAnonymous
)

// Services bundles everything the TUI needs.
type Services struct {
	Auth     app.AuthService
	Feed     app.FeedService
	Posts    app.PostService
	Comments app.CommentService
	Account  app.AccountService
	Editor   compose.Editor
}

// UsernameSetter is implemented by services that mark rows owned by the
// signed-in user.
type UsernameSetter interface {
	SetCurrentUsername(string)
}

// Prefs are the persisted feed preferences.
type Prefs struct {
	Source   string
	Category string
	SortBy   string
}

type authCheckedMsg struct {
	session app.Session
	err     error
}

type postSavedMsg struct {
	id         string // Local ID for creates, post ID for edits
	isEdit     bool
	confession domain.Confession
	err        error
}

type signedOutMsg struct{}

// Model is the root model. It owns the session state machine and routes
// messages to the active view.
type Model struct {
	svcs    Services
	log     *slog.Logger
	session sessionState
	view    view
	prefs   Prefs
	persist func(Prefs)

	username string
	keys     common.KeyMap

	feed    feed.Model
	auth    auth.Model
	compose compose.Model
	profile profile.Model

	width  int
	height int
}

// NewModel creates the root model. persist is called whenever feed
// preferences change; nil disables persistence.
func NewModel(svcs Services, log *slog.Logger, prefs Prefs, persist func(Prefs)) Model {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if persist == nil {
		persist = func(Prefs) {}
	}
	return Model{
		svcs:    svcs,
		log:     log,
		prefs:   prefs,
		persist: persist,
		keys:    common.DefaultKeyMap(),
		auth:    auth.New(svcs.Auth),
	}
}

// Init checks for an existing session before showing anything interactive.
func (m Model) Init() tea.Cmd {
	authSvc := m.svcs.Auth
	return func() tea.Msg {
		session, err := authSvc.Check(context.Background())
		return authCheckedMsg{session: session, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		var cmd tea.Cmd
		m.feed, cmd = m.feed.Update(msg)
		if m.view == viewCompose {
			m.compose, _ = m.compose.Update(msg)
		}
		return m, cmd

	case authCheckedMsg:
		if msg.err != nil {
			if !errors.Is(msg.err, domain.ErrUnauthorized) {
				m.log.Error("session check failed", "error", msg.err)
			}
			m.session = sessionAnonymous
			m.view = viewAuth
			return m, m.auth.Init()
		}
		return m.startSession(msg.session)

	case auth.DoneMsg:
		return m.startSession(msg.Session)

	case compose.DoneMsg:
		return m.handleComposeDone(msg)

	case postSavedMsg:
		var cmd tea.Cmd
		m.feed, cmd = m.feed.Update(feed.ResultMsg{
			ID:         msg.id,
			Confession: msg.confession,
			IsEdit:     msg.isEdit,
			Err:        msg.err,
		})
		return m, cmd

	case feed.EditConfessionMsg:
		m.compose = compose.NewEdit(m.svcs.Editor, msg.UseInline, msg.Confession)
		m.view = viewCompose
		return m, m.compose.Init()

	case feed.DeleteConfessionMsg:
		posts := m.svcs.Posts
		id := msg.ID
		return m, func() tea.Msg {
			err := posts.Delete(context.Background(), id)
			return feed.DeleteResultMsg{ID: id, Err: err}
		}

	case feed.PrefsChangedMsg:
		m.prefs = Prefs{Source: msg.Source, Category: msg.Category, SortBy: msg.SortBy}
		m.persist(m.prefs)
		return m, nil

	case profile.CloseMsg:
		m.view = viewFeed
		return m, nil

	case profile.AccountDeletedMsg:
		// The account is gone server-side. Drop the local session too.
		return m.endSession(true)

	case signedOutMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.routeToActive(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.view == viewFeed && !m.feed.CapturingInput() {
		switch {
		case key.Matches(msg, m.keys.Quit) && !m.feed.IsInDetailView():
			return m, tea.Quit
		case key.Matches(msg, m.keys.NewEditor):
			m.compose = compose.New(m.svcs.Editor, false)
			m.view = viewCompose
			return m, m.compose.Init()
		case key.Matches(msg, m.keys.NewInline):
			m.compose = compose.New(m.svcs.Editor, true)
			m.view = viewCompose
			return m, m.compose.Init()
		case key.Matches(msg, m.keys.Profile):
			m.profile = profile.New(m.svcs.Account)
			m.view = viewProfile
			return m, m.profile.Init()
		case key.Matches(msg, m.keys.Logout):
			return m.endSession(false)
		}
	}
	return m.routeToActive(msg)
}

func (m Model) routeToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case viewAuth:
		m.auth, cmd = m.auth.Update(msg)
	case viewFeed:
		m.feed, cmd = m.feed.Update(msg)
	case viewCompose:
		m.compose, cmd = m.compose.Update(msg)
	case viewProfile:
		m.profile, cmd = m.profile.Update(msg)
	default:
		// Loading screen; nothing interactive yet.
	}

	// A session that expires mid-use sends the user back to sign-in.
	if err := unauthorizedIn(msg); err != nil {
		m.log.Info("session expired")
		m.session = sessionAnonymous
		m.view = viewAuth
		m.auth = auth.New(m.svcs.Auth)
		return m, m.auth.Init()
	}
	return m, cmd
}

func unauthorizedIn(msg tea.Msg) error {
	var err error
	switch msg := msg.(type) {
	case feed.PageErrorMsg:
		err = msg.Err
	case feed.ReactResultMsg:
		err = msg.Err
	case feed.CommentsLoadedMsg:
		err = msg.Err
	}
	if err != nil && errors.Is(err, domain.ErrUnauthorized) {
		return err
	}
	return nil
}

func (m Model) startSession(session app.Session) (tea.Model, tea.Cmd) {
	m.session = sessionAuthenticated
	m.username = session.Username
	if setter, ok := m.svcs.Feed.(UsernameSetter); ok {
		setter.SetCurrentUsername(session.Username)
	}
	m.feed = feed.New(m.svcs.Feed, m.svcs.Posts, m.svcs.Comments,
		m.prefs.Source, m.prefs.Category, m.prefs.SortBy)
	m.view = viewFeed
	m.log.Info("session started", "username", session.Username)

	cmds := []tea.Cmd{m.feed.Init()}
	if m.width > 0 {
		var cmd tea.Cmd
		m.feed, cmd = m.feed.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// endSession returns to the sign-in screen. When the account was deleted the
// server already invalidated the session; otherwise sign out explicitly.
func (m Model) endSession(accountDeleted bool) (tea.Model, tea.Cmd) {
	m.session = sessionAnonymous
	m.username = ""
	m.view = viewAuth
	m.auth = auth.New(m.svcs.Auth)
	m.feed = feed.Model{}

	cmds := []tea.Cmd{m.auth.Init()}
	if !accountDeleted {
		authSvc := m.svcs.Auth
		log := m.log
		cmds = append(cmds, func() tea.Msg {
			if err := authSvc.SignOut(context.Background()); err != nil {
				log.Error("sign out failed", "error", err)
			}
			return signedOutMsg{}
		})
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleComposeDone(msg compose.DoneMsg) (tea.Model, tea.Cmd) {
	m.view = viewFeed
	if msg.Canceled {
		return m, nil
	}
	if msg.Err != nil {
		m.log.Error("compose failed", "error", msg.Err)
		return m, nil
	}

	posts := m.svcs.Posts
	draft := msg.Draft

	if msg.IsEdit {
		var cmd tea.Cmd
		m.feed, cmd = m.feed.Update(feed.UpdateOptimisticConfessionMsg{ID: msg.PostID, Draft: draft})
		postID := msg.PostID
		return m, tea.Batch(cmd, func() tea.Msg {
			confession, err := posts.Edit(context.Background(), postID, draft)
			return postSavedMsg{id: postID, isEdit: true, confession: confession, err: err}
		})
	}

	localID := "local-" + uuid.NewString()
	var cmd tea.Cmd
	m.feed, cmd = m.feed.Update(feed.AddOptimisticConfessionMsg{LocalID: localID, Draft: draft})
	return m, tea.Batch(cmd, func() tea.Msg {
		confession, err := posts.Create(context.Background(), draft)
		return postSavedMsg{id: localID, confession: confession, err: err}
	})
}

// View renders the active view.
func (m Model) View() string {
	switch m.view {
	case viewAuth:
		return m.auth.View()
	case viewFeed:
		return m.feed.View()
	case viewCompose:
		return m.compose.View()
	case viewProfile:
		return m.profile.View()
	default:
		return common.AppTitleStyle.Render("Confide") + "\n\n checking session…\n"
	}
}
