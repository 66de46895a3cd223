package viseme

import "math"

// PerEventDuration computes the uniform per-viseme display duration for one
// chunk, rounded to hundredths of a second. Total animated time for the
// chunk then matches character-paced text reveal: charCount/cps seconds
// spread evenly across however many visemes were derived.
//
// Callers must guarantee visemeCount > 0 and cps > 0; chunks that trim to an
// empty viseme sequence contribute no events and never reach here.
func PerEventDuration(charCount, visemeCount int, cps float64) float64 {
	d := float64(charCount) / (float64(visemeCount) * cps)
	return math.Round(d*100) / 100
}
