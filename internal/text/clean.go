// Package text implements field cleanup and linguistic normalization for
// short product and ingredient phrases.
package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Clean applies field cleanup: NFC canonicalization, lowercasing, and
// whitespace collapsing with leading/trailing whitespace removed. This is
// the light cleanup stored in the preprocessed table, distinct from the
// linguistic normalization applied when building corpus keys.
func Clean(s string) string {
	s = norm.NFC.String(s)
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	wasSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !wasSpace {
				b.WriteRune(' ')
				wasSpace = true
			}
		} else {
			b.WriteRune(r)
			wasSpace = false
		}
	}
	return b.String()
}
