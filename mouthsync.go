// Package mouthsync converts timing-annotated dialogue text into viseme
// event sequences, so mouth-shape animation plays in lock-step with
// character-paced text reveal. The conversion is a pure three-stage
// pipeline: markup segmentation into constant-speed chunks, approximate
// grapheme→phoneme→viseme transliteration, and per-chunk duration
// allocation. Accuracy is best-effort by design; the goal is "better than a
// static mouth", not phonetic correctness, and the system is English-only.
package mouthsync

import (
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/normanking/mouthsync/internal/phoneme"
	"github.com/normanking/mouthsync/internal/segment"
	"github.com/normanking/mouthsync/internal/viseme"
)

// DefaultCPS is the fallback reveal rate when the host supplies none,
// matching a typical visual-novel text speed setting.
const DefaultCPS = 25.0

// TableSource supplies the active viseme table set. *viseme.Tables
// implements it directly for a fixed set; assets.Store implements it with
// hot reload.
type TableSource interface {
	Tables() *viseme.Tables
}

// Pipeline converts dialogue lines to viseme events. It is stateless apart
// from its table source and safe for concurrent use; every Process call is
// independent and synchronous.
type Pipeline struct {
	src        TableSource
	defaultCPS float64
	log        zerolog.Logger
}

// New creates a Pipeline reading tables from src and using defaultCPS as
// the ambient reveal rate. A defaultCPS of zero or less falls back to
// DefaultCPS. The logger is used at debug level only; pass zerolog.Nop()
// to keep the pipeline silent.
func New(src TableSource, defaultCPS float64, log zerolog.Logger) *Pipeline {
	if defaultCPS <= 0 {
		defaultCPS = DefaultCPS
	}
	return &Pipeline{
		src:        src,
		defaultCPS: defaultCPS,
		log:        log.With().Str("component", "pipeline").Logger(),
	}
}

// Process converts one dialogue line at the pipeline's default rate. The
// result is raw per-chunk output; callers hand it to viseme.Finalize before
// playback, mirroring how the animation transform consumes it.
func (p *Pipeline) Process(text string) []viseme.Event {
	return p.ProcessAt(text, p.defaultCPS)
}

// ProcessAt converts one dialogue line with cps overriding the default
// reveal rate for the whole call. Inline {cps=...} markup still applies per
// chunk on top of it. Empty input, or input that normalizes to nothing
// speakable, yields an empty sequence. ProcessAt never fails: malformed
// markup and unknown words degrade to drop-and-continue.
func (p *Pipeline) ProcessAt(text string, cps float64) []viseme.Event {
	if cps <= 0 {
		cps = p.defaultCPS
	}
	tables := p.src.Tables()

	var out []viseme.Event
	for _, ch := range segment.Split(text, cps) {
		if ch.IsPause() {
			out = append(out, viseme.Event{Code: viseme.Rest, Duration: ch.Pause})
			continue
		}

		phonetic := phoneme.Transliterate(phoneme.Normalize(ch.Text))
		codes := viseme.TrimRest(tables.Map(phonetic))
		if len(codes) == 0 {
			// Punctuation-only or unspeakable chunk: contributes nothing,
			// not a zero-duration event.
			continue
		}

		d := viseme.PerEventDuration(utf8.RuneCountInString(ch.Text), len(codes), ch.CPS)
		for _, c := range codes {
			out = append(out, viseme.Event{Code: c, Duration: d})
		}
	}

	p.log.Debug().
		Int("chars", utf8.RuneCountInString(text)).
		Int("events", len(out)).
		Float64("cps", cps).
		Msg("line processed")
	return out
}
