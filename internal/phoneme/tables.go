package phoneme

import "github.com/normanking/mouthsync/internal/match"

// The phonetic alphabet is ARPAbet-flavored: two-letter vowel symbols
// (iy ih eh ae aa ah ao uw uh er ow aw oy ey ay), plain consonant letters,
// and the cluster consonants th sh ch jh ng. Sentence punctuation and the
// word separator pass through as themselves so the viseme stage can turn
// them into rests.

// exceptions holds hand-authored pronunciations for words the cluster rules
// systematically butcher: irregular function words, loanwords, proper nouns.
// Keys must match a whole normalized token exactly.
var exceptions = map[string]string{
	"one":      "wuhn",
	"once":     "wuhns",
	"of":       "uhv",
	"the":      "thuh",
	"was":      "wuhz",
	"says":     "sehz",
	"said":     "sehd",
	"does":     "duhz",
	"gone":     "gaan",
	"iron":     "ayern",
	"colonel":  "kernuhl",
	"queue":    "kyuw",
	"corps":    "kor",
	"choir":    "kwayer",
	"woman":    "wuhmuhn",
	"women":    "wihmihn",
	"anime":    "ahnihmey",
	"karaoke":  "kahrahowkiy",
	"tortilla": "tortiyah",
	"sayonara": "sayownahrah",
}

// graphemeRules maps spelling clusters to phonetic symbols, longest first.
// Coverage is intentionally shallow; anything unmatched falls through to
// single letters, and anything unknown there is dropped.
var graphemeRules = match.RuleSet[string]{
	Trigraphs: map[string]string{
		"tch": "ch",
		"dge": "jh",
		"igh": "ay",
		"ear": "eer",
		"air": "ehr",
		"eau": "ow",
		"sch": "sk",
		"ght": "t",
		"ion": "yuhn",
	},
	Digraphs: map[string]string{
		"th": "th",
		"sh": "sh",
		"ch": "ch",
		"ph": "f",
		"gh": "g",
		"ng": "ng",
		"ck": "k",
		"qu": "kw",
		"wh": "w",
		"wr": "r",
		"kn": "n",
		"gn": "n",
		"oo": "uw",
		"ee": "iy",
		"ea": "iy",
		"ie": "iy",
		"ei": "ey",
		"ey": "ey",
		"ai": "ey",
		"ay": "ey",
		"oa": "ow",
		"ow": "ow",
		"ou": "aw",
		"oi": "oy",
		"oy": "oy",
		"au": "ao",
		"aw": "ao",
		"ue": "uw",
		"ui": "uw",
		"ur": "er",
		"ir": "er",
		"er": "er",
		"ar": "ar",
		"or": "or",
		"ll": "l",
		"ss": "s",
		"tt": "t",
		"pp": "p",
		"mm": "m",
		"nn": "n",
		"ff": "f",
		"rr": "r",
		"bb": "b",
		"dd": "d",
		"gg": "g",
		"zz": "z",
		"cc": "k",
	},
	Singles: map[string]string{
		"a": "ae", "b": "b", "c": "k", "d": "d", "e": "eh",
		"f": "f", "g": "g", "h": "h", "i": "ih", "j": "jh",
		"k": "k", "l": "l", "m": "m", "n": "n", "o": "aa",
		"p": "p", "q": "k", "r": "r", "s": "s", "t": "t",
		"u": "ah", "v": "v", "w": "w", "x": "ks", "y": "y",
		"z": "z",
		".": ".", "?": "?", "!": "!", ",": ",", ";": ";", ":": ":",
	},
}
