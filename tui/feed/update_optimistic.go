package feed

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/confide-social/confide/domain"
)

// handleAddOptimistic prepends a speculative row for a confession whose
// creation request is still in flight.
func (m Model) handleAddOptimistic(msg AddOptimisticConfessionMsg) (Model, tea.Cmd) {
	hashtags := msg.Draft.Hashtags
	if len(hashtags) == 0 {
		hashtags = domain.ExtractHashtags(msg.Draft.Content)
	}
	item := ConfessionItem{
		Confession: domain.Confession{
			ID:         msg.LocalID,
			Title:      msg.Draft.Title,
			Content:    msg.Draft.Content,
			Categories: msg.Draft.Categories,
			Hashtags:   hashtags,
			CreatedAt:  time.Now(),
			IsOwn:      true,
		},
		Status: StatusPendingCreate,
	}
	m.items = append([]ConfessionItem{item}, m.items...)
	m.cursor = 0
	m.startIndex = 0
	return m, nil
}

// handleUpdateOptimistic applies an in-flight edit, keeping the previous
// text for rollback.
func (m Model) handleUpdateOptimistic(msg UpdateOptimisticConfessionMsg) (Model, tea.Cmd) {
	for i := range m.items {
		if m.items[i].Confession.ID != msg.ID {
			continue
		}
		m.items[i].OldTitle = m.items[i].Confession.Title
		m.items[i].OldContent = m.items[i].Confession.Content
		m.items[i].Confession.Title = msg.Draft.Title
		m.items[i].Confession.Content = msg.Draft.Content
		if len(msg.Draft.Categories) > 0 {
			m.items[i].Confession.Categories = msg.Draft.Categories
		}
		m.items[i].Status = StatusPendingUpdate
		break
	}
	return m, nil
}

// handleResult reconciles a create or edit with the server's answer.
func (m Model) handleResult(msg ResultMsg) (Model, tea.Cmd) {
	for i := range m.items {
		if m.items[i].Confession.ID != msg.ID {
			continue
		}
		if msg.Err != nil {
			if msg.IsEdit {
				// Restore the pre-edit text.
				m.items[i].Confession.Title = m.items[i].OldTitle
				m.items[i].Confession.Content = m.items[i].OldContent
				m.items[i].Status = StatusNormal
			} else {
				m.items[i].Status = StatusFailed
			}
			m.items[i].Err = msg.Err
			m.notice = "Confession failed: " + msg.Err.Error()
			return m, nil
		}
		m.items[i] = ConfessionItem{Confession: msg.Confession}
		if m.focused != nil && (m.focused.ID == msg.ID || m.focused.ID == msg.Confession.ID) {
			c := msg.Confession
			m.focused = &c
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleDeleteResult(msg DeleteResultMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		for i := range m.items {
			if m.items[i].Confession.ID == msg.ID {
				m.items[i].Status = StatusNormal
				m.items[i].Err = nil
				break
			}
		}
		m.notice = "Delete failed: " + msg.Err.Error()
		return m, nil
	}
	m.removeItem(msg.ID)
	if m.focused != nil && m.focused.ID == msg.ID {
		m.closeDetail()
	}
	return m, nil
}
