package feed

import (
	"testing"

	"github.com/confide-social/confide/domain"
)

func ids(list []domain.Confession) []string {
	out := make([]string, len(list))
	for i, c := range list {
		out[i] = c.ID
	}
	return out
}

func equalIDs(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestMerge_AppendDeduplicatesKeepingFirst(t *testing.T) {
	existing := []domain.Confession{
		makeConfession("a", 1),
		makeConfession("b", 2),
	}
	incoming := []domain.Confession{
		{ID: "b", Likes: 99}, // Drifted onto the next page
		makeConfession("c", 3),
	}
	got := merge(existing, incoming, true)
	if !equalIDs(ids(got), "a", "b", "c") {
		t.Fatalf("unexpected order: %v", ids(got))
	}
	if got[1].Likes != 2 {
		t.Fatalf("duplicate should keep earliest occurrence, got likes=%d", got[1].Likes)
	}
}

func TestMerge_Idempotent(t *testing.T) {
	page := []domain.Confession{makeConfession("a", 0), makeConfession("b", 0)}
	once := merge(nil, page, true)
	twice := merge(once, page, true)
	if !equalIDs(ids(twice), "a", "b") {
		t.Fatalf("merging the same page twice changed the list: %v", ids(twice))
	}
}

func TestMerge_ReplaceDiscardsExisting(t *testing.T) {
	existing := []domain.Confession{makeConfession("old", 0)}
	incoming := []domain.Confession{makeConfession("new", 0)}
	got := merge(existing, incoming, false)
	if !equalIDs(ids(got), "new") {
		t.Fatalf("replace should drop the previous list: %v", ids(got))
	}
}

func TestMatchesFilter(t *testing.T) {
	c := domain.Confession{
		Title:      "A quiet thought",
		Content:    "something about work stress #overwhelmed",
		Categories: []string{"Work"},
		Hashtags:   []string{"overwhelmed"},
	}
	if !matchesFilter(c, "", "") {
		t.Fatal("empty filters should match everything")
	}
	if !matchesFilter(c, "work", "") {
		t.Fatal("category match is case-insensitive")
	}
	if matchesFilter(c, "Family", "") {
		t.Fatal("wrong category should not match")
	}
	if !matchesFilter(c, "", "QUIET") {
		t.Fatal("search should match the title case-insensitively")
	}
	if !matchesFilter(c, "", "overwhelm") {
		t.Fatal("search should match hashtags")
	}
	if matchesFilter(c, "", "unrelated") {
		t.Fatal("non-matching query should filter the row out")
	}
}
