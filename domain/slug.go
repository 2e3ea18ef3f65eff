package domain

import (
	"strings"
	"unicode"
)

// Slugify maps an article title to its canonical slug: lowercase, every run
// of non-alphanumeric characters collapsed into a single hyphen, leading and
// trailing hyphens trimmed. Deterministic, no I/O.
//
// Two titles mapping to the same slug are a conflict, surfaced to the caller
// as ErrConflict by the article service.
func Slugify(title string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		} else {
			pendingHyphen = true
		}
	}
	return b.String()
}
