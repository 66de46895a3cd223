package viseme

// TrimRest removes trailing Rest codes from a raw code sequence. A sequence
// that is all rests trims to nil.
func TrimRest(codes []int) []int {
	end := len(codes)
	for end > 0 && codes[end-1] == Rest {
		end--
	}
	if end == 0 {
		return nil
	}
	return codes[:end]
}

// Finalize post-processes an event stream for playback: trailing Rest events
// are stripped, then adjacent runs of the same code merge into one event
// with the run's summed duration. Finalize is idempotent and returns a new
// slice; the input is not modified.
func Finalize(events []Event) []Event {
	end := len(events)
	for end > 0 && events[end-1].Code == Rest {
		end--
	}
	if end == 0 {
		return nil
	}

	out := make([]Event, 0, end)
	for _, ev := range events[:end] {
		if n := len(out); n > 0 && out[n-1].Code == ev.Code {
			out[n-1].Duration += ev.Duration
			continue
		}
		out = append(out, ev)
	}
	return out
}

// TotalDuration sums the display durations of a sequence, for callers sizing
// playback buffers.
func TotalDuration(events []Event) float64 {
	var total float64
	for _, ev := range events {
		total += ev.Duration
	}
	return total
}
