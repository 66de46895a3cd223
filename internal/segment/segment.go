// Package segment splits markup-annotated dialogue into constant-speed
// chunks. The markup is the Ren'Py-style tag set produced by the dialogue
// authoring layer: {cps=N}...{/cps} speed spans (N may be *-prefixed to
// multiply the current rate), self-closing {w=N} pauses, self-closing
// {fast} instant-reveal markers, and arbitrary other {tags} which carry no
// timing meaning here.
package segment

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	tagFast  = "{fast}"
	cpsOpen  = "{cps="
	cpsClose = "{/cps}"
	waitOpen = "{w="
)

// maxDepth bounds segmentation recursion on pathological input. Past the
// cap the remainder degrades to a single terminal chunk with its markup
// stripped, which keeps the output well-formed.
const maxDepth = 64

var tagPattern = regexp.MustCompile(`\{[^{}]*\}`)

// Chunk is a maximal substring of dialogue with one constant effective
// reveal rate, or a pure pause. Chunks are immutable once produced.
type Chunk struct {
	Text  string
	CPS   float64
	Pause float64 // seconds; a pause chunk carries no text
}

// IsPause reports whether the chunk is a fixed-duration pause.
func (c Chunk) IsPause() bool { return c.Pause > 0 }

// Split segments text into ordered chunks at baseCPS characters per second.
// Speed spans take precedence over pause tags; both recurse left to right,
// so nested {cps=*N} multipliers compose against the enclosing rate.
// Malformed markup never errors: an unmatched or unparsable tag simply
// stops matching and gets stripped with the rest of the terminal chunk.
func Split(text string, baseCPS float64) []Chunk {
	return split(text, baseCPS, 0)
}

func split(text string, cps float64, depth int) []Chunk {
	if text == "" {
		return nil
	}

	// Everything before the last instant-reveal marker is shown at once and
	// never animated.
	if i := strings.LastIndex(text, tagFast); i >= 0 {
		text = text[i+len(tagFast):]
		if text == "" {
			return nil
		}
	}

	if depth >= maxDepth {
		return terminal(text, cps)
	}

	if before, inner, rate, after, ok := findSpeedSpan(text, cps); ok {
		out := split(before, cps, depth+1)
		out = append(out, split(inner, rate, depth+1)...)
		return append(out, split(after, cps, depth+1)...)
	}

	if before, secs, after, ok := findPause(text); ok {
		out := split(before, cps, depth+1)
		out = append(out, Chunk{Pause: secs})
		return append(out, split(after, cps, depth+1)...)
	}

	return terminal(text, cps)
}

// terminal strips any leftover markup and emits the atomic text chunk.
func terminal(text string, cps float64) []Chunk {
	text = tagPattern.ReplaceAllString(text, "")
	if text == "" {
		return nil
	}
	return []Chunk{{Text: text, CPS: cps}}
}

// findSpeedSpan locates the first well-formed {cps=...}...{/cps} span.
// A missing close tag or an unparsable rate reports no match.
func findSpeedSpan(text string, base float64) (before, inner string, rate float64, after string, ok bool) {
	start := strings.Index(text, cpsOpen)
	if start < 0 {
		return
	}
	valEnd := strings.IndexByte(text[start:], '}')
	if valEnd < 0 {
		return
	}
	valEnd += start
	val := text[start+len(cpsOpen) : valEnd]

	end := matchingClose(text, valEnd+1)
	if end < 0 {
		return
	}

	if strings.HasPrefix(val, "*") {
		mult, err := strconv.ParseFloat(val[1:], 64)
		if err != nil || mult <= 0 {
			return
		}
		rate = base * mult
	} else {
		abs, err := strconv.ParseFloat(val, 64)
		if err != nil || abs <= 0 {
			return
		}
		rate = abs
	}

	return text[:start], text[valEnd+1 : end], rate, text[end+len(cpsClose):], true
}

// matchingClose finds the balanced {/cps} for a span whose inner text starts
// at from, so nested speed spans stay inside their parent's inner text and
// compose multiplicatively on recursion. Returns -1 when unterminated.
func matchingClose(text string, from int) int {
	depth := 1
	for i := from; i < len(text); {
		open := strings.Index(text[i:], cpsOpen)
		close := strings.Index(text[i:], cpsClose)
		if close < 0 {
			return -1
		}
		if open >= 0 && open < close {
			depth++
			i += open + len(cpsOpen)
			continue
		}
		depth--
		if depth == 0 {
			return i + close
		}
		i += close + len(cpsClose)
	}
	return -1
}

// findPause locates the first well-formed {w=N} tag.
func findPause(text string) (before string, secs float64, after string, ok bool) {
	start := strings.Index(text, waitOpen)
	if start < 0 {
		return
	}
	end := strings.IndexByte(text[start:], '}')
	if end < 0 {
		return
	}
	end += start

	secs, err := strconv.ParseFloat(text[start+len(waitOpen):end], 64)
	if err != nil || secs <= 0 {
		return before, 0, after, false
	}
	return text[:start], secs, text[end+1:], true
}
