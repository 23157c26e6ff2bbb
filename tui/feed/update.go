package feed

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorVisible()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case PageLoadedMsg:
		return m.handlePageLoaded(msg)

	case PageErrorMsg:
		return m.handlePageError(msg)

	case ReactResultMsg:
		return m.handleReactResult(msg)

	case CommentsLoadedMsg:
		return m.handleCommentsLoaded(msg)

	case CommentPostedMsg:
		return m.handleCommentPosted(msg)

	case CommentDeletedMsg:
		return m.handleCommentDeleted(msg)

	case CommentLikeResultMsg:
		return m.handleCommentLikeResult(msg)

	case AddOptimisticConfessionMsg:
		return m.handleAddOptimistic(msg)

	case UpdateOptimisticConfessionMsg:
		return m.handleUpdateOptimistic(msg)

	case ResultMsg:
		return m.handleResult(msg)

	case DeleteResultMsg:
		return m.handleDeleteResult(msg)

	case ResetFeedStateMsg:
		m.closeDetail()
		m.confirmDelete = false
		m.showAllHints = false
		m.searchInput = false
		return m, nil
	}

	return m, nil
}
