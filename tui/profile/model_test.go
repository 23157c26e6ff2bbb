package profile

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/confide-social/confide/domain"
)

type stubAccountService struct {
	profile    domain.Profile
	stats      domain.Statistics
	updated    *domain.Profile
	deleteErr  error
	deletions  int
	avatarURL  string
	avatarPath string
}

func (s *stubAccountService) CurrentProfile(context.Context) (domain.Profile, error) {
	return s.profile, nil
}

func (s *stubAccountService) UpdateProfile(_ context.Context, p domain.Profile) (domain.Profile, error) {
	s.updated = &p
	return p, nil
}

func (s *stubAccountService) DeleteAccount(context.Context) error {
	s.deletions++
	return s.deleteErr
}

func (s *stubAccountService) UploadAvatar(_ context.Context, path string) (string, error) {
	s.avatarPath = path
	return s.avatarURL, nil
}

func (s *stubAccountService) Statistics(context.Context) (domain.Statistics, error) {
	return s.stats, nil
}

func loadedModel(svc *stubAccountService) Model {
	m := New(svc)
	m, _ = m.Update(m.Init()())
	return m
}

func TestLoad_PopulatesProfileAndStats(t *testing.T) {
	svc := &stubAccountService{
		profile: domain.Profile{Username: "alice", Bio: "hi"},
		stats:   domain.Statistics{TotalPosts: 4, ActivePosts: 3},
	}
	m := loadedModel(svc)
	if m.loading || m.profile.Username != "alice" || m.stats.TotalPosts != 4 {
		t.Fatalf("load failed: %+v %+v", m.profile, m.stats)
	}
}

func TestEdit_SavesTrimmedFields(t *testing.T) {
	svc := &stubAccountService{profile: domain.Profile{Username: "alice"}}
	m := loadedModel(svc)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	if m.mode != modeEdit {
		t.Fatal("e should enter edit mode")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Alice A")})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should save")
	}
	m, _ = m.Update(cmd())

	if svc.updated == nil || svc.updated.Fullname != "Alice A" {
		t.Fatalf("fullname not saved: %+v", svc.updated)
	}
	if m.mode != modeView {
		t.Fatal("save should return to view mode")
	}
}

func TestDelete_RequiresConfirmation(t *testing.T) {
	svc := &stubAccountService{}
	m := loadedModel(svc)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("D")})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	if cmd != nil || svc.deletions != 0 {
		t.Fatal("declining the confirm must not delete")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("D")})
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	m, cmd2 := m.Update(cmd())
	if svc.deletions != 1 {
		t.Fatalf("expected one deletion, got %d", svc.deletions)
	}
	if _, ok := cmd2().(AccountDeletedMsg); !ok {
		t.Fatal("successful deletion should emit AccountDeletedMsg")
	}
}

func TestDelete_FailureStaysSignedIn(t *testing.T) {
	svc := &stubAccountService{deleteErr: errors.New("boom")}
	m := loadedModel(svc)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("D")})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	m, cmd2 := m.Update(cmd())
	if cmd2 != nil {
		t.Fatal("failed deletion must not end the session")
	}
	if m.notice == "" {
		t.Fatal("failure should surface a notice")
	}
}

func TestAvatarUpload(t *testing.T) {
	svc := &stubAccountService{avatarURL: "https://cdn/x.png"}
	m := loadedModel(svc)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	if m.mode != modeAvatar {
		t.Fatal("a should enter avatar mode")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/tmp/x.png")})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(cmd())

	if svc.avatarPath != "/tmp/x.png" {
		t.Fatalf("path not passed through: %q", svc.avatarPath)
	}
	if m.profile.ProfilePictureURL != "https://cdn/x.png" {
		t.Fatalf("avatar URL not applied: %q", m.profile.ProfilePictureURL)
	}
}
