package serial

import (
	"strings"
	"sync"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,  // compatibility forms like circled or superscript digits
			width.Fold, // fullwidth digits and letters to ASCII
			runes.Remove(runes.Predicate(func(r rune) bool { return !allowed(r) })),
		)
	},
}

// allowed reports whether r belongs to the serial alphabet
func allowed(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r == 'O', r == 'N', r == 'D', r == 'o', r == 'n', r == 'd':
		return true
	default:
		return false
	}
}

// Sanitize reduces raw keystroke input to the serial alphabet [0-9OND]
// case is preserved and length is not capped, an over long serial fails Decode as malformed
// callers at the presentation boundary use this before Decode
func Sanitize(raw string) string {
	if raw == "" {
		return ""
	}
	raw = strings.ToValidUTF8(raw, "")

	tr := chainPool.Get().(transform.Transformer)
	s, _, err := transform.String(tr, raw)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		return ""
	}
	return s
}
