package common

import "testing"

func TestEllipsis(t *testing.T) {
	if got := Ellipsis("short", 10); got != "short" {
		t.Fatalf("unexpected: %q", got)
	}
	if got := Ellipsis("a longer line of text", 8); got != "a longe…" {
		t.Fatalf("unexpected: %q", got)
	}
	if got := Ellipsis("anything", 0); got != "" {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestSanitize_StripsControlSequences(t *testing.T) {
	in := "hi\x1b[31mthere\x1b[0m\x07 friend\nok"
	got := Sanitize(in)
	if got != "hithere friend\nok" {
		t.Fatalf("unexpected: %q", got)
	}
}
