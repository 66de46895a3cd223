// Package match implements greedy longest-match-first substitution over
// fixed-length-keyed rule tables. Both the grapheme→phoneme and
// phoneme→viseme stages run on this engine; they differ only in table data.
package match

// RuleSet groups substitution rules by key length. Lookup order is always
// trigraph, then digraph, then single character, so longer clusters win.
// A nil map is treated as empty.
type RuleSet[V any] struct {
	Trigraphs map[string]V
	Digraphs  map[string]V
	Singles   map[string]V
}

// Lookup attempts the longest match at byte offset i of s. It returns the
// replacement, the number of input bytes consumed, and whether any table
// matched. On a miss it still reports one byte consumed so the caller can
// skip the character and keep scanning.
func (r *RuleSet[V]) Lookup(s string, i int) (V, int, bool) {
	if i+3 <= len(s) {
		if v, ok := r.Trigraphs[s[i:i+3]]; ok {
			return v, 3, true
		}
	}
	if i+2 <= len(s) {
		if v, ok := r.Digraphs[s[i:i+2]]; ok {
			return v, 2, true
		}
	}
	if v, ok := r.Singles[s[i:i+1]]; ok {
		return v, 1, true
	}
	var zero V
	return zero, 1, false
}

// ReplaceAll scans s left to right, calling emit for every matched rule.
// Characters with no rule are dropped silently. The scan never errors and
// always terminates: every iteration advances the cursor by at least one.
func ReplaceAll[V any](r *RuleSet[V], s string, emit func(V)) {
	for i := 0; i < len(s); {
		v, n, ok := r.Lookup(s, i)
		if ok {
			emit(v)
		}
		i += n
	}
}
