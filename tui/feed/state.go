package feed

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/confide-social/confide/app"
	"github.com/confide-social/confide/domain"
	"github.com/confide-social/confide/tui/common"
)

const (
	pageSize         = 10
	sentinelWindow   = 3 // Cursor within the last N visible items triggers the next page.
	commentCacheSize = 64
	maxCommentLen    = 500
)

// PageLoadedMsg is sent when a list page fetch completes successfully.
type PageLoadedMsg struct {
	Page      app.Page
	PageIndex int
	QueryKey  string
	ReqSeq    int
	Append    bool
}

// PageErrorMsg is sent when a list page fetch fails.
type PageErrorMsg struct {
	Err      error
	QueryKey string
	ReqSeq   int
	Append   bool
}

// ReactResultMsg carries the server's authoritative counters after a
// reaction attempt. No local state changes before this arrives.
type ReactResultMsg struct {
	ID     string
	Kind   domain.ReactionKind
	Update domain.ReactionUpdate
	Err    error
}

// CommentsLoadedMsg is sent when a confession's comment tree is loaded.
type CommentsLoadedMsg struct {
	PostID   string
	Comments []domain.Comment
	Err      error
}

// CommentPostedMsg is sent after a comment creation attempt. LocalID names
// the speculative row to reconcile or roll back.
type CommentPostedMsg struct {
	LocalID  string
	PostID   string
	ParentID string
	Comment  domain.Comment
	Err      error
}

// CommentDeletedMsg is sent after a comment deletion attempt.
type CommentDeletedMsg struct {
	ID       string
	ParentID string
	Err      error
}

// CommentLikeResultMsg carries the authoritative like state of a comment.
type CommentLikeResultMsg struct {
	ID    string
	Liked bool
	Likes int
	Err   error
}

// EditConfessionMsg is sent when the user wants to edit an own confession.
// The root model opens the composer.
type EditConfessionMsg struct {
	Confession domain.Confession
	UseInline  bool
}

// DeleteConfessionMsg asks the root model to delete a confession.
type DeleteConfessionMsg struct {
	ID string
}

// DeleteResultMsg is sent after a confession deletion attempt.
type DeleteResultMsg struct {
	ID  string
	Err error
}

// ResultMsg is a generic success/fail result for creation or update.
type ResultMsg struct {
	ID         string // Local or server ID
	Confession domain.Confession
	IsEdit     bool
	Err        error
}

// AddOptimisticConfessionMsg inserts a speculative row for a new confession.
type AddOptimisticConfessionMsg struct {
	LocalID string
	Draft   app.Draft
}

// UpdateOptimisticConfessionMsg applies a speculative edit to an own confession.
type UpdateOptimisticConfessionMsg struct {
	ID    string
	Draft app.Draft
}

// ResetFeedStateMsg closes transient UI (detail view, confirms) without
// touching the list.
type ResetFeedStateMsg struct{}

// PrefsChangedMsg tells the root model to persist feed preferences.
type PrefsChangedMsg struct {
	Source   string
	Category string
	SortBy   string
}

// --- Status types ---

type ConfessionStatus int

const (
	StatusNormal ConfessionStatus = iota
	StatusPendingCreate
	StatusPendingUpdate
	StatusPendingDelete
	StatusFailed
)

// ConfessionItem wraps a confession with its local mutation status.
type ConfessionItem struct {
	Confession domain.Confession
	Status     ConfessionStatus
	Err        error
	OldTitle   string // For rollback
	OldContent string // For rollback
}

// --- Feed sources ---

type feedSource int

const (
	sourceFeed feedSource = iota
	sourceForYou
	sourceBookmarks
	sourceMine
)

const (
	sortLatest   = "latest"
	sortTrending = "trending"
)

// --- Model ---

type modelServices struct {
	feedSvc    app.FeedService
	postSvc    app.PostService
	commentSvc app.CommentService
}

type feedState struct {
	source         feedSource
	sortBy         string
	category       string // Empty means all categories
	searchQuery    string
	includeExpired bool
	items          []ConfessionItem
	cursor         int
	page           int // Last successfully loaded page index
	totalPages     int
	hasMore        bool
	loading        bool
	loadingMore    bool
	err            error
	notice         string
	reqSeq         int
}

type uiState struct {
	keys         common.KeyMap
	spinner      spinner.Model
	width        int
	height       int
	startIndex   int // First visible item in the list window
	showAllHints bool
	searchInput  bool
	searchBuffer string
}

type detailState struct {
	showDetail      bool
	focused         *domain.Confession
	comments        []domain.Comment
	commentCursor   int // 0 for the post, 1...n for flattened comments
	loadingComments bool
	commentErr      error
	confirmDelete   bool // Own-post delete confirmation
	confirmComment  bool // Own-comment delete confirmation
	commentInput    bool
	commentBuffer   string
	replyTo         string // ParentID when replying; empty for top-level
	treeCache       *lru.Cache[string, []domain.Comment]
}

// Model holds the state for the feed (list) view.
type Model struct {
	modelServices
	feedState
	uiState
	detailState
}

// New creates a feed model with injected dependencies. source, category and
// sortBy restore persisted preferences; zero values select the defaults.
func New(feed app.FeedService, posts app.PostService, comments app.CommentService, source, category, sortBy string) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#C6A0F6"))

	cache, _ := lru.New[string, []domain.Comment](commentCacheSize)

	if sortBy != sortTrending {
		sortBy = sortLatest
	}

	return Model{
		modelServices: modelServices{
			feedSvc:    feed,
			postSvc:    posts,
			commentSvc: comments,
		},
		feedState: feedState{
			source:   parseFeedSource(source),
			sortBy:   sortBy,
			category: strings.TrimSpace(category),
			loading:  true,
			hasMore:  true,
		},
		uiState: uiState{
			keys:    common.DefaultKeyMap(),
			spinner: s,
		},
		detailState: detailState{
			treeCache: cache,
		},
	}
}

// Init starts the initial feed fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchPage(m.reqSeq, 0),
		m.spinner.Tick,
	)
}

// Refresh returns a Cmd that re-fetches the current list from page zero.
func (m Model) Refresh() tea.Cmd {
	return m.fetchPage(m.reqSeq, 0)
}

// Update handles messages for the feed view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m.update(msg)
}

// Confessions returns the currently held confessions for external access.
func (m Model) Confessions() []domain.Confession {
	out := make([]domain.Confession, len(m.items))
	for i, it := range m.items {
		out[i] = it.Confession
	}
	return out
}

// Loading reports whether the initial page is still loading.
func (m Model) Loading() bool {
	return m.loading
}

// Err returns the current list error, if any.
func (m Model) Err() error {
	return m.err
}

// IsInDetailView reports whether the detail view is open.
func (m Model) IsInDetailView() bool {
	return m.showDetail
}

// CapturingInput reports whether the feed is consuming raw key input, so
// global shortcuts should stay out of the way.
func (m Model) CapturingInput() bool {
	return m.searchInput || m.commentInput || m.confirmDelete || m.confirmComment
}

// SelectedConfession returns the currently highlighted confession, if any.
func (m Model) SelectedConfession() (domain.Confession, bool) {
	if m.showDetail && m.focused != nil {
		return *m.focused, true
	}
	if len(m.items) == 0 || m.cursor < 0 || m.cursor >= len(m.items) {
		return domain.Confession{}, false
	}
	return m.items[m.cursor].Confession, true
}

func parseFeedSource(s string) feedSource {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "foryou", "for-you":
		return sourceForYou
	case "bookmarks":
		return sourceBookmarks
	case "mine", "my-posts":
		return sourceMine
	default:
		return sourceFeed
	}
}

func (s feedSource) String() string {
	switch s {
	case sourceForYou:
		return "foryou"
	case sourceBookmarks:
		return "bookmarks"
	case sourceMine:
		return "mine"
	default:
		return "feed"
	}
}
