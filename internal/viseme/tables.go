package viseme

import "github.com/normanking/mouthsync/internal/match"

// Tables is an immutable phonetic-symbol → viseme-code table set. Build one
// with NewTables or DefaultTables; a populated Tables is safe for
// unrestricted concurrent use.
type Tables struct {
	rules match.RuleSet[[]int]
}

// NewTables builds a table set from raw symbol→codes maps grouped by symbol
// length. The maps are referenced, not copied; callers must not mutate them
// afterwards.
func NewTables(trigraphs, digraphs, singles map[string][]int) *Tables {
	return &Tables{rules: match.RuleSet[[]int]{
		Trigraphs: trigraphs,
		Digraphs:  digraphs,
		Singles:   singles,
	}}
}

// Map converts a phonetic string into an ordered code sequence using greedy
// longest-match lookup. Symbols with no table entry are skipped; multi-code
// entries (diphthongs) expand in order. Map never fails.
func (t *Tables) Map(phonetic string) []int {
	codes := make([]int, 0, len(phonetic))
	match.ReplaceAll(&t.rules, phonetic, func(cs []int) {
		codes = append(codes, cs...)
	})
	return codes
}

// Tables implements the pipeline's table source for a fixed set.
func (t *Tables) Tables() *Tables { return t }

// DefaultTables returns the table set shipped with the library, matching the
// default ten-shape mouth sprite set.
func DefaultTables() *Tables {
	return NewTables(defaultTrigraphs, defaultDigraphs, defaultSingles)
}

var defaultTrigraphs = map[string][]int{
	"eer": {ShapeEE, ShapeUU},
	"ehr": {ShapeEE, ShapeUU},
	"yuw": {ShapeEE, ShapeUU},
}

var defaultDigraphs = map[string][]int{
	// cluster consonants
	"th": {ShapeLTD},
	"sh": {ShapeCHSH},
	"ch": {ShapeCHSH},
	"jh": {ShapeCHSH},
	"ng": {ShapeSKG},
	"kw": {ShapeSKG, ShapeUU},
	"ks": {ShapeSKG},
	// monophthongs
	"iy": {ShapeEE},
	"ih": {ShapeEE},
	"eh": {ShapeEE},
	"ey": {ShapeEE},
	"ae": {ShapeAA},
	"aa": {ShapeAA},
	"ah": {ShapeAA},
	"ao": {ShapeOH},
	"uw": {ShapeUU},
	"uh": {ShapeUU},
	"er": {ShapeUU},
	// diphthongs and r-colored vowels expand to two shapes
	"ow": {ShapeOH, ShapeUU},
	"aw": {ShapeAA, ShapeUU},
	"oy": {ShapeOH, ShapeEE},
	"ay": {ShapeAA, ShapeEE},
	"ar": {ShapeAA, ShapeUU},
	"or": {ShapeOH, ShapeUU},
}

var defaultSingles = map[string][]int{
	"a": {ShapeAA}, "e": {ShapeEE}, "i": {ShapeEE}, "o": {ShapeOH},
	"u": {ShapeUU}, "y": {ShapeEE},
	"b": {ShapeMBP}, "m": {ShapeMBP}, "p": {ShapeMBP},
	"f": {ShapeFV}, "v": {ShapeFV},
	"d": {ShapeLTD}, "l": {ShapeLTD}, "n": {ShapeLTD}, "t": {ShapeLTD},
	"g": {ShapeSKG}, "k": {ShapeSKG}, "s": {ShapeSKG}, "z": {ShapeSKG},
	"j": {ShapeCHSH},
	"h": {ShapeAA},
	"r": {ShapeUU},
	"w": {ShapeUU},
	" ": {Rest},
	".": {Rest}, "?": {Rest}, "!": {Rest},
	",": {Rest}, ";": {Rest}, ":": {Rest},
}
