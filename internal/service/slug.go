package service

import (
	"strings"
	"unicode"
)

// slugify lowercases s, turns whitespace runs into single hyphens and drops
// everything outside [a-z0-9-].
func slugify(s string) string {
	var b strings.Builder
	space := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsSpace(r):
			space = true
			continue
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
		default:
			continue
		}
		if space {
			b.WriteByte('-')
			space = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
