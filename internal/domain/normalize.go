package domain

import (
	"strings"
	"unicode"
)

// NormalizeHashtag prepares a single hashtag for storage:
//   - trims surrounding whitespace and leading '#' marks
//   - converts to lowercase
//   - removes inner whitespace
//   - prefixes exactly one '#'
//
// Diacritics, digits, and underscores are preserved. An empty result means
// the input carried no tag.
func NormalizeHashtag(tag string) string {
	tag = strings.TrimLeft(strings.TrimSpace(tag), "#")
	if tag == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(tag) + 1)
	b.WriteByte('#')
	for _, r := range strings.ToLower(tag) {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	if b.Len() == 1 {
		return ""
	}
	return b.String()
}

// NormalizeHashtags normalizes every tag, drops empty ones and duplicates,
// and keeps first-seen order. The result is never nil.
func NormalizeHashtags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		n := NormalizeHashtag(t)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
