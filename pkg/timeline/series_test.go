package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sprout/entities"
)

func TestBoundedSeriesCap(t *testing.T) {
	wins := boundedSeries(anchor, 7, 1, 3, anchor.AddDate(0, 0, 365), time.Time{})

	require.Len(t, wins, 3)
	assert.Equal(t, anchor, wins[0].Start)
	assert.Equal(t, anchor.AddDate(0, 0, 7), wins[1].Start)
	assert.Equal(t, anchor.AddDate(0, 0, 14), wins[2].Start)
	assert.Equal(t, anchor.AddDate(0, 0, 15), wins[2].End)
}

func TestBoundedSeriesUntil(t *testing.T) {
	// 0, 7, 14 fit; 21 is past the bound.
	wins := boundedSeries(anchor, 7, 1, 100, anchor.AddDate(0, 0, 14), time.Time{})
	assert.Len(t, wins, 3)

	// The bound is inclusive.
	wins = boundedSeries(anchor, 7, 1, 100, anchor, time.Time{})
	assert.Len(t, wins, 1)

	// Start already past the bound.
	wins = boundedSeries(anchor.AddDate(0, 0, 1), 7, 1, 100, anchor, time.Time{})
	assert.Empty(t, wins)
}

func TestBoundedSeriesClampEnd(t *testing.T) {
	clamp := anchor.AddDate(0, 0, 16)
	wins := boundedSeries(anchor, 7, 7, 100, anchor.AddDate(0, 0, 14), clamp)

	require.Len(t, wins, 3)
	assert.Equal(t, anchor.AddDate(0, 0, 7), wins[0].End)
	assert.Equal(t, anchor.AddDate(0, 0, 14), wins[1].End)
	assert.Equal(t, clamp, wins[2].End, "final occurrence clamped")
}

func countTitled(specs []taskSpec, prefix string) int {
	n := 0
	for _, sp := range specs {
		if len(sp.title) >= len(prefix) && sp.title[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

// TestPlanSeriesLongSeason: a 200-day crop hits every per-series cap
// instead of generating weekly tasks for seven months.
func TestPlanSeriesLongSeason(t *testing.T) {
	plan := &entities.CropPlan{Method: MethodDirectSeed, DaysToMaturity: iptr(200)}
	timing := Timing{SowWeeksFromFrost: iptr(0)}
	lc := planLifecycle(plan, timing, anchor)

	specs := planSeries(lc, anchor, "Leek")

	assert.Equal(t, fertilizeCap, countTitled(specs, "Fertilize"))
	assert.Equal(t, waterCap, countTitled(specs, "Water"))
	assert.Equal(t, weedCap, countTitled(specs, "Weed"))
	assert.Equal(t, scoutCap, countTitled(specs, "Scout"))
	for _, sp := range specs {
		assert.Equal(t, entities.TaskCultivate, sp.typ)
	}
}

// TestPlanSeriesShortSeason: a 30-day crop is bounded by the harvest
// window, not the caps.
func TestPlanSeriesShortSeason(t *testing.T) {
	plan := &entities.CropPlan{Method: MethodDirectSeed, DaysToMaturity: iptr(30)}
	timing := Timing{SowWeeksFromFrost: iptr(0)}
	lc := planLifecycle(plan, timing, anchor)

	specs := planSeries(lc, anchor, "Radish")

	// Harvest runs day 30 to day 44. Fertilize and weed stop at the
	// start, watering continues through the end.
	assert.Equal(t, 1, countTitled(specs, "Fertilize"))
	assert.Equal(t, 6, countTitled(specs, "Water"))
	assert.Equal(t, 3, countTitled(specs, "Weed"))
	assert.Equal(t, 2, countTitled(specs, "Scout"))

	harvestEnd := anchor.AddDate(0, 0, 44)
	var lastWater taskSpec
	for _, sp := range specs {
		if countTitled([]taskSpec{sp}, "Water") == 1 {
			lastWater = sp
		}
	}
	assert.Equal(t, anchor.AddDate(0, 0, 38), lastWater.win.Start)
	assert.Equal(t, harvestEnd, lastWater.win.End, "watering never extends past harvest")
}
