package domain

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// EscapeTitle derives a literal identifier from an article title using a
// reversible percent-style escaping: spaces become underscores, letters,
// digits, hyphens and apostrophes pass through, and every other rune is
// percent-encoded byte by byte. Underscores themselves are escaped, so two
// distinct titles can only share an identifier through the index-level
// collision check, not through the escaping.
func EscapeTitle(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	for _, r := range title {
		switch {
		case r == ' ':
			b.WriteByte('_')
		case r == '-' || r == '\'' || r == '’':
			b.WriteRune(r)
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			var buf [utf8.UTFMax]byte
			n := utf8.EncodeRune(buf[:], r)
			for i := 0; i < n; i++ {
				fmt.Fprintf(&b, "%%%02X", buf[i])
			}
		}
	}
	return b.String()
}

// AssignIdentifiers sets the identifiers of a literal, its entries and their
// senses. Entry ordinals are 1-based per class abbreviation in document
// order; sense ordinals are 1-based over the senses that survived retraction.
// Must run only once extraction of the whole article is in memory, since
// ordinals require the complete sibling set.
func AssignIdentifiers(l *Literal) {
	l.ID = EscapeTitle(l.Label)
	counts := make(map[string]int)
	for _, e := range l.Entries {
		counts[e.ClassAbbrev]++
		e.ID = fmt.Sprintf("%s_%s%d", l.ID, e.ClassAbbrev, counts[e.ClassAbbrev])
		for i, s := range e.Senses {
			s.ID = fmt.Sprintf("%s.%d", e.ID, i+1)
		}
	}
}
