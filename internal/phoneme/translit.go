package phoneme

import (
	"strings"

	"github.com/normanking/mouthsync/internal/match"
)

// Transliterate converts normalized text into an approximate phonetic
// string, one whitespace-delimited token at a time. Tokens found in the
// exception dictionary substitute verbatim; everything else goes through the
// greedy cluster rules. Whitespace runs collapse to a single separator, and
// punctuation rides along via its own rules, so rests survive into the
// phonetic string.
func Transliterate(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	i := 0
	for i < len(text) {
		if isSpace(text[i]) {
			b.WriteByte(' ')
			for i < len(text) && isSpace(text[i]) {
				i++
			}
			continue
		}

		j := i
		for j < len(text) && !isSpace(text[j]) {
			j++
		}
		token := text[i:j]
		i = j

		if ph, ok := exceptions[token]; ok {
			b.WriteString(ph)
			continue
		}
		match.ReplaceAll(&graphemeRules, token, func(s string) {
			b.WriteString(s)
		})
	}
	return b.String()
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n'
}
