package feed

import (
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/confide-social/confide/app"
	"github.com/confide-social/confide/domain"
)

func makePage(prefix string, n, totalPages int, last bool) app.Page {
	content := make([]domain.Confession, n)
	for i := 0; i < n; i++ {
		content[i] = makeConfession(fmt.Sprintf("%s%d", prefix, i), 0)
	}
	return app.Page{Content: content, TotalPages: totalPages, Last: last}
}

func loadPage(t *testing.T, m Model, page app.Page, index int, appendPage bool) Model {
	t.Helper()
	m, _ = m.Update(PageLoadedMsg{
		Page:      page,
		PageIndex: index,
		QueryKey:  m.queryKey(),
		ReqSeq:    m.reqSeq,
		Append:    appendPage,
	})
	return m
}

func TestScrollThroughTrendingPages(t *testing.T) {
	m := New(&stubFeedService{}, &stubPostService{}, &stubCommentService{}, "", "", "trending")
	m.height = 40

	// Page zero replaces the empty list.
	m = loadPage(t, m, makePage("a", 10, 3, false), 0, false)
	if len(m.items) != 10 || m.loading || !m.hasMore {
		t.Fatalf("after page 0: items=%d loading=%v hasMore=%v", len(m.items), m.loading, m.hasMore)
	}

	// Scrolling near the bottom starts exactly one next-page fetch.
	var fetched bool
	for i := 0; i < 9; i++ {
		var cmd tea.Cmd
		m, cmd = m.Update(keyMsg("j"))
		if cmd != nil {
			fetched = true
		}
	}
	if !fetched || !m.loadingMore {
		t.Fatalf("expected a next-page fetch near the bottom, loadingMore=%v", m.loadingMore)
	}
	m2, cmd := m.Update(keyMsg("j"))
	if cmd != nil {
		t.Fatal("a second fetch must not start while one is in flight")
	}
	m = m2

	// Page one carries a9 again because the list shifted server-side.
	page1 := makePage("b", 9, 3, false)
	page1.Content = append([]domain.Confession{{ID: "a9", Likes: 42}}, page1.Content...)
	m = loadPage(t, m, page1, 1, true)
	if len(m.items) != 19 {
		t.Fatalf("duplicate a9 should be dropped, got %d items", len(m.items))
	}
	if m.items[9].Confession.Likes != 0 {
		t.Fatal("the earliest occurrence of a9 should win")
	}
	if m.loadingMore {
		t.Fatal("loadingMore should clear after the page lands")
	}

	// The last page ends pagination.
	m = loadPage(t, m, makePage("c", 5, 3, true), 2, true)
	if m.hasMore {
		t.Fatal("hasMore should be false after the last page")
	}
	if m.notice == "" {
		t.Fatal("expected an end-of-feed notice")
	}
}

func TestStaleResponsesAreDropped(t *testing.T) {
	m := newTestModel()
	m = loadPage(t, m, makePage("a", 3, 1, true), 0, false)

	// A response from a superseded request sequence is ignored.
	m2, _ := m.Update(PageLoadedMsg{
		Page:     makePage("x", 3, 1, true),
		QueryKey: m.queryKey(),
		ReqSeq:   m.reqSeq + 7,
	})
	if !equalIDs(ids(m2.Confessions()), "a0", "a1", "a2") {
		t.Fatalf("stale reqSeq response mutated the list: %v", ids(m2.Confessions()))
	}

	// A response for a different query is ignored too.
	m3, _ := m.Update(PageLoadedMsg{
		Page:     makePage("y", 3, 1, true),
		QueryKey: "bookmarks|latest|false",
		ReqSeq:   m.reqSeq,
	})
	if !equalIDs(ids(m3.Confessions()), "a0", "a1", "a2") {
		t.Fatalf("stale queryKey response mutated the list: %v", ids(m3.Confessions()))
	}
}

func TestSwitchingFeedResetsList(t *testing.T) {
	m := newTestModel()
	m = loadPage(t, m, makePage("a", 5, 1, true), 0, false)
	m.cursor = 3

	before := m.reqSeq
	m, _ = m.Update(keyMsg("tab"))
	if m.source != sourceForYou {
		t.Fatalf("tab should advance the source, got %v", m.source)
	}
	if len(m.items) != 0 || m.cursor != 0 || !m.loading {
		t.Fatalf("switching feeds must discard the list: items=%d cursor=%d", len(m.items), m.cursor)
	}
	if m.reqSeq == before {
		t.Fatal("switching feeds must invalidate in-flight requests")
	}
}

func TestSortToggleResetsList(t *testing.T) {
	m := newTestModel()
	m = loadPage(t, m, makePage("a", 5, 2, false), 0, false)

	m, _ = m.Update(keyMsg("o"))
	if m.sortBy != sortTrending {
		t.Fatalf("expected trending, got %q", m.sortBy)
	}
	if len(m.items) != 0 || !m.loading {
		t.Fatal("sort change must discard the list before refetching")
	}
}

func TestAppendErrorKeepsExistingItems(t *testing.T) {
	m := newTestModel()
	m = loadPage(t, m, makePage("a", 10, 2, false), 0, false)
	m.loadingMore = true

	m, _ = m.Update(PageErrorMsg{
		Err:      errors.New("boom"),
		QueryKey: m.queryKey(),
		ReqSeq:   m.reqSeq,
		Append:   true,
	})
	if len(m.items) != 10 {
		t.Fatalf("append failure must not drop loaded items, got %d", len(m.items))
	}
	if m.loadingMore {
		t.Fatal("loadingMore should clear on failure")
	}
	if m.err == nil {
		t.Fatal("the error should be surfaced")
	}
}

func TestPendingRowsSurviveRefresh(t *testing.T) {
	m := newTestModel()
	m.items = []ConfessionItem{
		{Confession: domain.Confession{ID: "local-1", Content: "in flight", IsOwn: true}, Status: StatusPendingCreate},
		{Confession: makeConfession("a0", 0)},
	}
	m = loadPage(t, m, makePage("b", 2, 1, true), 0, false)

	got := ids(m.Confessions())
	if !equalIDs(got, "local-1", "b0", "b1") {
		t.Fatalf("pending create should survive a refresh: %v", got)
	}
	if m.items[0].Status != StatusPendingCreate {
		t.Fatal("pending status lost across refresh")
	}
}
