package feed

import (
	"strings"

	"github.com/confide-social/confide/domain"
)

// merge combines an existing list with a freshly fetched page. When
// appendPages is false the incoming page replaces the list wholesale.
// Duplicate IDs keep their earliest occurrence, so a confession that drifts
// onto a later page while the user scrolls is never shown twice. Merging the
// same page again is a no-op.
func merge(existing, incoming []domain.Confession, appendPages bool) []domain.Confession {
	if !appendPages {
		existing = nil
	}
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	out := make([]domain.Confession, 0, len(existing)+len(incoming))
	for _, c := range existing {
		if _, dup := seen[c.ID]; dup {
			continue
		}
		seen[c.ID] = struct{}{}
		out = append(out, c)
	}
	for _, c := range incoming {
		if _, dup := seen[c.ID]; dup {
			continue
		}
		seen[c.ID] = struct{}{}
		out = append(out, c)
	}
	return out
}

// matchesFilter reports whether a confession survives the current category
// and search filters. Filtering happens on the client over fetched pages.
func matchesFilter(c domain.Confession, category, query string) bool {
	if category != "" {
		found := false
		for _, cat := range c.Categories {
			if strings.EqualFold(cat, category) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(c.DisplayTitle()), q) {
		return true
	}
	if strings.Contains(strings.ToLower(c.Content), q) {
		return true
	}
	for _, tag := range c.Hashtags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
