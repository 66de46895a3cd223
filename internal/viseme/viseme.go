// Package viseme turns phonetic strings into timed mouth-shape codes.
// The code assignments are data, not logic: the default set below ships with
// the library, and hosts can swap in their own table asset to match whatever
// mouth sprites they render.
package viseme

// Rest is the neutral closed-mouth code. It doubles as the pause code and is
// what trailing-silence trimming removes.
const Rest = 0

// Default mouth-shape codes. Only Rest is load-bearing for the pipeline;
// the rest document the shipped asset.
const (
	ShapeAA   = 1 // open jaw: a, h
	ShapeEE   = 2 // spread lips: e, i, y
	ShapeOH   = 3 // round open: o, au
	ShapeUU   = 4 // tight round: u, w, r
	ShapeMBP  = 5 // lips pressed: m, b, p
	ShapeFV   = 6 // teeth on lip: f, v
	ShapeLTD  = 7 // tongue visible: l, n, t, d, th
	ShapeSKG  = 8 // teeth together: s, z, k, g, ng
	ShapeCHSH = 9 // protruded: ch, sh, j
)

// Event is one mouth shape held for a display duration. An ordered Event
// slice is the pipeline's final product; playback order is significant.
type Event struct {
	Code     int     `json:"code"`
	Duration float64 `json:"duration"` // seconds
}
