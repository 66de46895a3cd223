package phoneme

import (
	"strings"
	"testing"
)

func TestTransliterate_ExceptionDictionary(t *testing.T) {
	if got := Transliterate("the"); got != "thuh" {
		t.Errorf("expected dictionary hit for 'the', got %q", got)
	}
	if got := Transliterate("colonel"); got != "kernuhl" {
		t.Errorf("expected dictionary hit for 'colonel', got %q", got)
	}
	// Dictionary entries match whole tokens only.
	if got := Transliterate("theory"); strings.HasPrefix(got, "thuh") {
		t.Errorf("dictionary must not match token prefixes, got %q", got)
	}
}

func TestTransliterate_ClusterRules(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trigraph igh", "night", "nayt"},
		{"trigraph tch", "catch", "kaech"},
		{"digraph th+ng", "thing", "thihng"},
		{"digraph sh", "she", "sheh"},
		{"digraph qu", "quit", "kwiht"},
		{"double letters collapse", "hello", "hehlaa"},
		{"apostrophe dropped", "don't", "daant"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Transliterate(tt.input); got != tt.want {
				t.Errorf("Transliterate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTransliterate_PunctuationPassThrough(t *testing.T) {
	got := Transliterate("wait... what?")
	if got != "weyt... waet?" {
		t.Errorf("punctuation must pass through, got %q", got)
	}
}

func TestTransliterate_SeparatorsCollapse(t *testing.T) {
	got := Transliterate("a  \t b")
	want := "ae b"
	if got != want {
		t.Errorf("whitespace runs must collapse to one separator, got %q want %q", got, want)
	}
}

func TestTransliterate_NonsenseNeverStalls(t *testing.T) {
	// All-consonant garbage must produce some best-effort output without
	// errors or infinite loops.
	got := Transliterate("zzgrx bcdfg")
	if got == "" {
		t.Error("expected non-empty output for consonant clusters")
	}
	for _, r := range got {
		if r == 'x' {
			t.Errorf("unmatched characters must be dropped, got %q", got)
		}
	}
}
