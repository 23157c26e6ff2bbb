package compose

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/confide-social/confide/domain"
)

type stubEditor struct {
	content string
	err     error
}

func (s stubEditor) Cmd(string) (*exec.Cmd, string, error) {
	return exec.Command("true"), "", s.err
}

func (s stubEditor) ReadContent(string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.content, nil
}

func runCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// finishEditor feeds the model the message the editor run would produce.
func finishEditor(m Model) (Model, tea.Cmd) {
	return m.Update(editorFinishedMsg{tmpPath: "unused"})
}

func TestEditorFlow_AdvancesToMetadata(t *testing.T) {
	m := New(stubEditor{content: "deep secret #hidden"}, false)

	m, _ = finishEditor(m)
	if m.step != stepMeta {
		t.Fatalf("editor content should advance to metadata, step=%v", m.step)
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	result, ok := runCmd(cmd).(DoneMsg)
	if !ok {
		t.Fatal("expected a DoneMsg")
	}
	if result.Draft.Content != "deep secret #hidden" {
		t.Fatalf("unexpected content: %q", result.Draft.Content)
	}
	if len(result.Draft.Hashtags) != 1 || result.Draft.Hashtags[0] != "hidden" {
		t.Fatalf("hashtags not extracted: %v", result.Draft.Hashtags)
	}
	if result.Draft.Expiry != domain.ExpiryNever {
		t.Fatalf("default expiry should be never, got %v", result.Draft.Expiry)
	}
}

func TestEditorFlow_EmptyContentCancels(t *testing.T) {
	m := New(stubEditor{content: ""}, false)
	m, cmd := finishEditor(m)
	result, ok := runCmd(cmd).(DoneMsg)
	if !ok || !result.Canceled {
		t.Fatalf("blank editor content should cancel, got %#v", result)
	}
	_ = m
}

func TestEditorFlow_ErrorSurfaces(t *testing.T) {
	m := New(stubEditor{err: errors.New("no editor")}, false)
	m, cmd := finishEditor(m)
	result, ok := runCmd(cmd).(DoneMsg)
	if !ok || result.Err == nil {
		t.Fatalf("editor failure should surface, got %#v", result)
	}
	_ = m
}

func TestEditorFlow_UnchangedEditCancels(t *testing.T) {
	c := domain.Confession{ID: "p1", Content: "same as before"}
	m := NewEdit(stubEditor{content: "same as before"}, false, c)
	m, cmd := finishEditor(m)
	result, ok := runCmd(cmd).(DoneMsg)
	if !ok || !result.Canceled {
		t.Fatalf("unchanged content on edit should cancel, got %#v", result)
	}
	_ = m
}

func TestMetadata_CategoryAndExpiryCycle(t *testing.T) {
	m := New(stubEditor{content: "x"}, false)
	m, _ = finishEditor(m)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlE})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	result := runCmd(cmd).(DoneMsg)

	if len(result.Draft.Categories) != 1 || result.Draft.Categories[0] != domain.Categories[0] {
		t.Fatalf("category not selected: %v", result.Draft.Categories)
	}
	if result.Draft.Expiry != domain.ExpiryHours24 {
		t.Fatalf("expiry should cycle to 24h, got %v", result.Draft.Expiry)
	}
}

func TestEdit_PrefillsAndMarksResult(t *testing.T) {
	c := domain.Confession{
		ID:             "p1",
		Title:          "old title",
		Content:        "old content",
		Categories:     []string{"Work"},
		ExpiryDuration: domain.ExpiryDays7,
	}
	m := NewEdit(stubEditor{content: "rewritten"}, false, c)
	m, _ = finishEditor(m)
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	result := runCmd(cmd).(DoneMsg)

	if !result.IsEdit || result.PostID != "p1" {
		t.Fatalf("edit metadata lost: %#v", result)
	}
	if result.Draft.Content != "rewritten" {
		t.Fatalf("unexpected content: %q", result.Draft.Content)
	}
	if result.Draft.Title != "old title" {
		t.Fatalf("title should carry over: %q", result.Draft.Title)
	}
	if result.Draft.Expiry != domain.ExpiryDays7 {
		t.Fatalf("expiry should carry over: %v", result.Draft.Expiry)
	}
}

func TestEscapeCancels(t *testing.T) {
	m := New(stubEditor{}, true)
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	result, ok := runCmd(cmd).(DoneMsg)
	if !ok || !result.Canceled {
		t.Fatalf("esc should cancel, got %#v", result)
	}
	_ = m
}

func TestRealEditorRoundTrip(t *testing.T) {
	// The real EnvEditor contract: content written to a temp file, comment
	// stripped on read. Exercised here with a file instead of an editor.
	dir := t.TempDir()
	path := filepath.Join(dir, "confide.md")
	if err := os.WriteFile(path, []byte("<!--\nnotes\n-->\n\nactual confession"), 0o600); err != nil {
		t.Fatal(err)
	}
	m := New(fileEditor{path: path}, false)
	m, _ = m.Update(editorFinishedMsg{tmpPath: path})
	if m.step != stepMeta || m.body.Value() != "actual confession" {
		t.Fatalf("round trip failed: step=%v body=%q", m.step, m.body.Value())
	}
}

type fileEditor struct{ path string }

func (f fileEditor) Cmd(string) (*exec.Cmd, string, error) {
	return exec.Command("true"), f.path, nil
}

func (f fileEditor) ReadContent(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	s := string(data)
	if idx := strings.Index(s, "-->"); idx != -1 {
		s = s[idx+3:]
	}
	return strings.TrimSpace(s), nil
}
