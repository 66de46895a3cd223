package mouthsync

import (
	"github.com/normanking/mouthsync/internal/assets"
	"github.com/normanking/mouthsync/internal/viseme"
)

// Event is one mouth shape held for a display duration. An ordered Event
// slice is the pipeline's final product; playback order is significant.
type Event = viseme.Event

// Tables is an immutable phonetic-symbol → viseme-code table set.
type Tables = viseme.Tables

// Rest is the neutral closed-mouth code. It doubles as the pause code and
// is what trailing-silence trimming removes.
const Rest = viseme.Rest

// DefaultTables returns the table set shipped with the library, matching
// the default ten-shape mouth sprite set. It satisfies TableSource.
func DefaultTables() *Tables {
	return viseme.DefaultTables()
}

// NewTables builds a table set from raw symbol→codes maps grouped by symbol
// length, for hosts that render a different mouth sprite set.
func NewTables(trigraphs, digraphs, singles map[string][]int) *Tables {
	return viseme.NewTables(trigraphs, digraphs, singles)
}

// LoadTables reads and validates a YAML table asset file (see
// examples/visemes.yaml for the format).
func LoadTables(path string) (*Tables, error) {
	return assets.Load(path)
}

// Finalize post-processes an event stream for playback: trailing Rest
// events are stripped, then adjacent runs of the same code merge into one
// event with the run's summed duration. Exposed separately from Process so
// the animation transform can consume the raw stream and finalize itself.
func Finalize(events []Event) []Event {
	return viseme.Finalize(events)
}

// TotalDuration sums the display durations of a sequence, for callers
// sizing playback buffers.
func TotalDuration(events []Event) float64 {
	return viseme.TotalDuration(events)
}
