package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

var anchor = d(2025, 5, 10)

// TestBuildWindowExplicitZeroOffset: an explicit offset of zero is a
// real value, not "unset".
func TestBuildWindowExplicitZeroOffset(t *testing.T) {
	got := buildWindow(anchor, iptr(0), iptr(6), nil, nil, fallbackSeedWeeks, seedWindowDays, -1)
	assert.Equal(t, anchor, got.Start)
	assert.Equal(t, anchor.AddDate(0, 0, seedWindowDays), got.End)
}

func TestBuildWindowExplicitNegativeOffset(t *testing.T) {
	got := buildWindow(anchor, iptr(-42), nil, nil, nil, fallbackSeedWeeks, seedWindowDays, -1)
	assert.Equal(t, d(2025, 3, 29), got.Start)
}

func TestBuildWindowWeeksDefault(t *testing.T) {
	got := buildWindow(anchor, nil, iptr(6), nil, nil, fallbackSeedWeeks, seedWindowDays, -1)
	assert.Equal(t, d(2025, 3, 29), got.Start, "6 weeks before the anchor")
	assert.Equal(t, d(2025, 4, 3), got.End, "default width without a min/max pair")
}

func TestBuildWindowFallbackWeeks(t *testing.T) {
	got := buildWindow(anchor, nil, nil, nil, nil, fallbackTransplantWeeks, transplantWindowDays, +1)
	assert.Equal(t, d(2025, 5, 24), got.Start, "hard-coded 2 weeks after frost")
}

// TestBuildWindowRangeEnd: before-anchor windows take the late edge from
// the minimum weeks figure, after-anchor from the maximum.
func TestBuildWindowRangeEnd(t *testing.T) {
	before := buildWindow(anchor, nil, iptr(6), iptr(5), iptr(7), fallbackSeedWeeks, seedWindowDays, -1)
	assert.Equal(t, d(2025, 3, 29), before.Start)
	assert.Equal(t, d(2025, 4, 5), before.End, "anchor minus min weeks")

	after := buildWindow(anchor, nil, iptr(2), iptr(1), iptr(3), fallbackTransplantWeeks, transplantWindowDays, +1)
	assert.Equal(t, d(2025, 5, 24), after.Start)
	assert.Equal(t, d(2025, 5, 31), after.End, "anchor plus max weeks")
}

// TestBuildWindowBadRange: inverted or degenerate pairs are ignored,
// never swapped or clamped.
func TestBuildWindowBadRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max *int
	}{
		{"inverted", iptr(7), iptr(5)},
		{"equal", iptr(6), iptr(6)},
		{"min only", iptr(5), nil},
		{"max only", nil, iptr(7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildWindow(anchor, nil, iptr(6), tt.min, tt.max, fallbackSeedWeeks, seedWindowDays, -1)
			assert.Equal(t, d(2025, 3, 29), got.Start)
			assert.Equal(t, d(2025, 4, 3), got.End, "falls back to the default width")
		})
	}
}

// TestBuildWindowExplicitPastRangeEdge: an explicit offset later than
// the range's late edge keeps the default width so start <= end holds.
func TestBuildWindowExplicitPastRangeEdge(t *testing.T) {
	got := buildWindow(anchor, iptr(-21), nil, iptr(5), iptr(7), fallbackSeedWeeks, seedWindowDays, -1)
	assert.Equal(t, d(2025, 4, 19), got.Start)
	assert.False(t, got.End.Before(got.Start))
	assert.Equal(t, got.Start.AddDate(0, 0, seedWindowDays), got.End)
}
