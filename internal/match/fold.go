package match

import (
	"strings"
	"unicode"
)

// Fold lowercases s and drops word separators, so that "userID", "user_id"
// and "User-Id" all fold to "userid".
func Fold(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
}
