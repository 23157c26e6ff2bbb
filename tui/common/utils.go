package common

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Ellipsis shortens s to at most max display cells, appending "…" when cut.
// ANSI escape sequences are not counted towards the width.
func Ellipsis(s string, max int) string {
	if max < 1 {
		return ""
	}
	if ansi.StringWidth(s) <= max {
		return s
	}
	return ansi.Truncate(s, max-1, "…")
}

// Sanitize strips ANSI control sequences from server-supplied text before
// it hits the terminal. Not a security boundary, just display hygiene.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, ansi.Strip(s))
}
