package common

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines shared key bindings across all views. Bindings are matched
// contextually, so a key may mean different things in different views.
type KeyMap struct {
	Quit          key.Binding
	Refresh       key.Binding
	NewEditor     key.Binding // p: compose via $EDITOR
	NewInline     key.Binding // P: compose via inline textarea
	Edit          key.Binding // e: edit own confession
	Delete        key.Binding // d: delete own confession / comment
	Like          key.Binding // l: like
	Support       key.Binding // s: support
	Bookmark      key.Binding // b: bookmark
	Comment       key.Binding // c: comment / reply (detail view)
	Category      key.Binding // c: cycle category filter (feed view)
	Search        key.Binding // /: free-text filter
	Sort          key.Binding // o: toggle latest/trending
	SwitchFeed    key.Binding // tab: next feed tab
	ToggleExpired key.Binding // x: include expired (my posts)
	Profile       key.Binding // u: open own profile
	Logout        key.Binding // ctrl+l: sign out
	Up            key.Binding
	Down          key.Binding
	Home          key.Binding
	ToggleHints   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		NewEditor: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "confess ($EDITOR)"),
		),
		NewInline: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "confess (inline)"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Like: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "like"),
		),
		Support: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "support"),
		),
		Bookmark: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "bookmark"),
		),
		Comment: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "comment"),
		),
		Category: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "category"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Sort: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "sort"),
		),
		SwitchFeed: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch feed"),
		),
		ToggleExpired: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "show expired"),
		),
		Profile: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "profile"),
		),
		Logout: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "sign out"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		ToggleHints: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}
