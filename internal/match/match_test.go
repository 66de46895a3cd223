package match

import (
	"testing"
)

func testRules() *RuleSet[string] {
	return &RuleSet[string]{
		Trigraphs: map[string]string{"abc": "TRI"},
		Digraphs:  map[string]string{"ab": "DI", "ca": "CA"},
		Singles:   map[string]string{"a": "A", "b": "B", "c": "C"},
	}
}

func TestRuleSet_Lookup_LongestFirst(t *testing.T) {
	r := testRules()

	v, n, ok := r.Lookup("abcd", 0)
	if !ok || v != "TRI" || n != 3 {
		t.Errorf("expected trigraph match TRI/3, got %q/%d ok=%v", v, n, ok)
	}

	v, n, ok = r.Lookup("abd", 0)
	if !ok || v != "DI" || n != 2 {
		t.Errorf("expected digraph match DI/2, got %q/%d ok=%v", v, n, ok)
	}

	v, n, ok = r.Lookup("ad", 0)
	if !ok || v != "A" || n != 1 {
		t.Errorf("expected single match A/1, got %q/%d ok=%v", v, n, ok)
	}
}

func TestRuleSet_Lookup_MissAdvancesOne(t *testing.T) {
	r := testRules()

	_, n, ok := r.Lookup("xab", 0)
	if ok {
		t.Error("expected no match for 'x'")
	}
	if n != 1 {
		t.Errorf("miss must consume one byte, got %d", n)
	}
}

func TestRuleSet_Lookup_NearEndOfString(t *testing.T) {
	// A trigraph key must not match past the end of the input.
	r := testRules()

	v, n, ok := r.Lookup("ab", 0)
	if !ok || v != "DI" || n != 2 {
		t.Errorf("expected digraph at end of string, got %q/%d ok=%v", v, n, ok)
	}
}

func TestReplaceAll(t *testing.T) {
	r := testRules()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"trigraph wins", "abca", []string{"TRI", "A"}},
		{"mixed", "abxb", []string{"DI", "B"}},
		{"all misses drop silently", "xyz", nil},
		{"empty input", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			ReplaceAll(r, tt.input, func(s string) { got = append(got, s) })

			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("expected %v, got %v", tt.want, got)
					break
				}
			}
		})
	}
}
