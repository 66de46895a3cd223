// Package phoneme provides best-effort English grapheme→phoneme conversion
// for lip-sync. The transliteration is deliberately naive: a small exception
// dictionary plus ordered cluster substitution, tuned to look right on a
// mouth rather than to be linguistically correct.
package phoneme

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`\{[^{}]*\}`)

// Normalize prepares raw dialogue text for transliteration: lowercase,
// remaining markup tags removed, hyphens treated as word breaks, and
// everything outside the speakable alphabet (lowercase letters, apostrophe,
// whitespace, sentence punctuation) dropped. Normalize is idempotent.
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = tagPattern.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "-", " ")

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r == '\'' || r == ' ' || r == '\t' || r == '\n':
			b.WriteRune(r)
		case r == '.' || r == '?' || r == '!' || r == ',' || r == ';' || r == ':':
			b.WriteRune(r)
		}
	}
	return b.String()
}
