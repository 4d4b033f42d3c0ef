package core

import (
	"strings"
	"unicode"
)

// CollapseWhitespace trims s and replaces every run of white space (spaces,
// tabs, newlines and other Unicode white space) with a single ASCII space.
func CollapseWhitespace(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !space {
				b.WriteByte(' ')
				space = true
			}
			continue
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}
