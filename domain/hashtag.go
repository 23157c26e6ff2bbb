package domain

import (
	"regexp"
	"strings"
)

var hashtagRe = regexp.MustCompile(`#(\w+)`)

// ExtractHashtags scans free text for #word tokens and returns the
// lower-cased token text without the leading '#'. Order of appearance is
// kept and duplicates are preserved as found; callers that need a unique
// set deduplicate themselves.
func ExtractHashtags(text string) []string {
	matches := hashtagRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, strings.ToLower(m[1]))
	}
	return tags
}
