package feed

import (
	"errors"
	"testing"

	"github.com/confide-social/confide/domain"
)

func TestReactResult_PatchesEveryCopy(t *testing.T) {
	m := newTestModel()
	m.items = makeItems("a", "b")
	c := m.items[0].Confession
	m.showDetail = true
	m.focused = &c

	m, _ = m.Update(ReactResultMsg{
		ID:     "a",
		Kind:   domain.ReactionLike,
		Update: domain.ReactionUpdate{Likes: 7, Supports: 2, Comments: 1, Bookmarked: true},
	})

	if m.items[0].Confession.Likes != 7 || !m.items[0].Confession.Bookmarked {
		t.Fatalf("list row not patched: %+v", m.items[0].Confession)
	}
	if m.focused.Likes != 7 || m.focused.Supports != 2 {
		t.Fatalf("detail copy not patched: %+v", m.focused)
	}
	if m.items[1].Confession.Likes != 0 {
		t.Fatal("unrelated row was touched")
	}
}

func TestReactResult_FailureChangesNothing(t *testing.T) {
	m := newTestModel()
	m.items = []ConfessionItem{{Confession: makeConfession("a", 5)}}

	m, _ = m.Update(ReactResultMsg{
		ID:   "a",
		Kind: domain.ReactionLike,
		Err:  errors.New("boom"),
	})

	if m.items[0].Confession.Likes != 5 {
		t.Fatalf("counters changed on failure: %d", m.items[0].Confession.Likes)
	}
	if m.notice == "" {
		t.Fatal("failure should surface a notice")
	}
}

func TestBookmarkRemovalDropsRowInBookmarksFeed(t *testing.T) {
	m := newTestModel()
	m.source = sourceBookmarks
	m.items = makeItems("a", "b", "c")
	m.cursor = 1

	m, _ = m.Update(ReactResultMsg{
		ID:     "b",
		Kind:   domain.ReactionBookmark,
		Update: domain.ReactionUpdate{Bookmarked: false},
	})

	if !equalIDs(ids(m.Confessions()), "a", "c") {
		t.Fatalf("unbookmarked row should leave the bookmarks feed: %v", ids(m.Confessions()))
	}
}

func TestBookmarkRemovalKeepsRowElsewhere(t *testing.T) {
	m := newTestModel()
	m.items = makeItems("a")
	m.items[0].Confession.Bookmarked = true

	m, _ = m.Update(ReactResultMsg{
		ID:     "a",
		Kind:   domain.ReactionBookmark,
		Update: domain.ReactionUpdate{Bookmarked: false},
	})

	if len(m.items) != 1 {
		t.Fatal("rows outside the bookmarks feed stay put")
	}
	if m.items[0].Confession.Bookmarked {
		t.Fatal("bookmark flag should clear")
	}
}
