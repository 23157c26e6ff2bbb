package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/carlmjohnson/versioninfo"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/confide-social/confide/infra/confide"
	"github.com/confide-social/confide/infra/config"
	"github.com/confide-social/confide/infra/editor"
	"github.com/confide-social/confide/infra/session"
	"github.com/confide-social/confide/tui"
)

type cliMode int

const (
	cliRun cliMode = iota
	cliVersion
	cliHelp
	cliInvalid
)

func parseCLIArgs(args []string) (cliMode, string) {
	if len(args) == 0 {
		return cliRun, ""
	}

	switch args[0] {
	case "--version", "-version", "-v":
		return cliVersion, ""
	case "--help", "-h", "help":
		return cliHelp, ""
	default:
		return cliInvalid, fmt.Sprintf("unexpected argument: %s", strings.Join(args, " "))
	}
}

func usage() string {
	return "Usage: confide [--version|-version|-v] [--help|-h]"
}

// openLogger writes structured logs to a file. The TUI owns the terminal, so
// stderr is not an option while the program runs.
func openLogger(path string) (*slog.Logger, func()) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}
	}
	return slog.New(slog.NewJSONHandler(f, nil)), func() { _ = f.Close() }
}

func main() {
	mode, msg := parseCLIArgs(os.Args[1:])
	switch mode {
	case cliVersion:
		fmt.Printf("Confide %s\ncommit: %s\nbuilt: %s\n",
			versioninfo.Version, versioninfo.Revision, versioninfo.LastCommit.Format("2006-01-02"))
		return
	case cliHelp:
		fmt.Println(usage())
		return
	case cliInvalid:
		fmt.Fprintf(os.Stderr, "%s\n%s\n", msg, usage())
		os.Exit(2)
	}

	// 1. Load config from environment.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := openLogger(cfg.LogPath)
	defer closeLog()

	// 2. Build infrastructure.
	jar, err := session.NewJar(cfg.CookiePath, cfg.APIBaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "session: %v\n", err)
		os.Exit(1)
	}
	client := confide.NewClient(cfg.APIBaseURL, jar, logger)

	// 3. Build services (concrete types satisfy app.* interfaces).
	svcs := tui.Services{
		Auth:     confide.NewAuthService(client, jar),
		Feed:     confide.NewFeedService(client, ""),
		Posts:    confide.NewPostService(client, ""),
		Comments: confide.NewCommentService(client),
		Account:  confide.NewAccountService(client),
		Editor:   editor.NewEnvEditor(),
	}

	uiState, _ := config.LoadUIState(cfg.UIStatePath)
	prefs := tui.Prefs{
		Source:   uiState.FeedSource,
		Category: uiState.Category,
		SortBy:   uiState.SortBy,
	}
	persist := func(p tui.Prefs) {
		state := config.UIState{FeedSource: p.Source, Category: p.Category, SortBy: p.SortBy}
		if err := config.SaveUIState(cfg.UIStatePath, state); err != nil {
			logger.Warn("could not save UI state", "error", err)
		}
	}

	// 4. Wire the root TUI model and run.
	rootModel := tui.NewModel(svcs, logger, prefs, persist)
	p := tea.NewProgram(rootModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "confide: %v\n", err)
		os.Exit(1)
	}
}
