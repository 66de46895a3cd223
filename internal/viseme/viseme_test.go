package viseme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTables_Map_GreedyLongestFirst(t *testing.T) {
	tables := DefaultTables()

	// "eer" has a trigraph entry that must win over "e"+"er".
	assert.Equal(t, []int{ShapeEE, ShapeUU}, tables.Map("eer"))

	// Diphthong expands to two sequential codes.
	assert.Equal(t, []int{ShapeOH, ShapeUU}, tables.Map("ow"))
}

func TestTables_Map_UnknownSymbolsSkipped(t *testing.T) {
	tables := DefaultTables()

	// "q" never appears in the phonetic alphabet and has no entry.
	assert.Equal(t, []int{Rest}, tables.Map("q?"))
	assert.Empty(t, tables.Map("qqq"))
}

func TestTables_Map_PunctuationIsRest(t *testing.T) {
	tables := DefaultTables()

	got := tables.Map("m. s")
	assert.Equal(t, []int{ShapeMBP, Rest, Rest, ShapeSKG}, got)
}

func TestTables_Map_CustomTablesInjectable(t *testing.T) {
	tables := NewTables(
		nil,
		map[string][]int{"th": {3}},
		map[string][]int{"a": {1}},
	)

	assert.Equal(t, []int{3, 1}, tables.Map("tha"))
}

func TestPerEventDuration(t *testing.T) {
	tests := []struct {
		name    string
		chars   int
		visemes int
		cps     float64
		want    float64
	}{
		{"even split", 4, 4, 10, 0.1},
		{"rounds to hundredths", 10, 3, 25, 0.13},
		{"more visemes than chars", 2, 8, 20, 0.01},
		{"doubling cps halves duration", 4, 4, 20, 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PerEventDuration(tt.chars, tt.visemes, tt.cps)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestTrimRest(t *testing.T) {
	assert.Equal(t, []int{Rest, 1}, TrimRest([]int{Rest, 1, Rest, Rest}))
	assert.Nil(t, TrimRest([]int{Rest, Rest}))
	assert.Nil(t, TrimRest(nil))
	assert.Equal(t, []int{2}, TrimRest([]int{2}))
}

func TestFinalize_TrimsTrailingRest(t *testing.T) {
	events := []Event{{Code: 1, Duration: 0.1}, {Code: Rest, Duration: 0.2}, {Code: Rest, Duration: 0.1}}

	got := Finalize(events)

	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Code)
}

func TestFinalize_MergesAdjacentRuns(t *testing.T) {
	events := []Event{
		{Code: 1, Duration: 0.1},
		{Code: 1, Duration: 0.1},
		{Code: Rest, Duration: 0.5},
		{Code: 2, Duration: 0.1},
		{Code: 2, Duration: 0.1},
		{Code: 2, Duration: 0.1},
	}

	got := Finalize(events)

	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0].Code)
	assert.InDelta(t, 0.2, got[0].Duration, 1e-9)
	assert.Equal(t, Rest, got[1].Code)
	assert.Equal(t, 2, got[2].Code)
	assert.InDelta(t, 0.3, got[2].Duration, 1e-9)
}

func TestFinalize_Idempotent(t *testing.T) {
	inputs := [][]Event{
		nil,
		{{Code: Rest, Duration: 1}},
		{{Code: 1, Duration: 0.1}, {Code: 1, Duration: 0.1}, {Code: Rest, Duration: 0.2}},
		{{Code: 3, Duration: 0.05}, {Code: 4, Duration: 0.05}},
	}

	for _, in := range inputs {
		once := Finalize(in)
		twice := Finalize(once)
		assert.Equal(t, once, twice)
	}
}

func TestFinalize_Invariants(t *testing.T) {
	events := []Event{
		{Code: 2, Duration: 0.1},
		{Code: 2, Duration: 0.1},
		{Code: Rest, Duration: 0.3},
		{Code: Rest, Duration: 0.3},
		{Code: 5, Duration: 0.1},
		{Code: Rest, Duration: 0.2},
	}

	got := Finalize(events)

	require.NotEmpty(t, got)
	assert.NotEqual(t, Rest, got[len(got)-1].Code, "must never end on a rest")
	for i := 1; i < len(got); i++ {
		assert.NotEqual(t, got[i-1].Code, got[i].Code, "no adjacent equal codes")
	}
}

func TestFinalize_DoesNotModifyInput(t *testing.T) {
	events := []Event{{Code: 1, Duration: 0.1}, {Code: 1, Duration: 0.1}}

	Finalize(events)

	assert.InDelta(t, 0.1, events[0].Duration, 1e-9)
}

func TestTotalDuration(t *testing.T) {
	events := []Event{{Code: 1, Duration: 0.1}, {Code: 2, Duration: 0.25}}
	assert.InDelta(t, 0.35, TotalDuration(events), 1e-9)
	assert.Zero(t, TotalDuration(nil))
}
