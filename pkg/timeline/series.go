package timeline

import (
	"time"

	"sprout/entities"
)

// Per-series tuning. Caps keep a single crop's recurring volume around
// ten entries instead of unbounded weekly spam across a long season.
const (
	fertilizeStartDays = 14
	fertilizeInterval  = 21
	fertilizeCap       = 6

	waterStartDays = 3
	waterInterval  = 7
	waterWidthDays = 7
	waterCap       = 15

	weedStartDays = 14
	weedInterval  = 7
	weedWidthDays = 1
	weedCap       = 10

	scoutStartDays = 21
	scoutInterval  = 7
	scoutWidthDays = 1
	scoutCap       = 8
)

// boundedSeries emits occurrences every intervalDays from start, stopping
// at whichever triggers first: maxN or the until date. Both bounds are
// checked every iteration. A non-zero clampEnd caps each occurrence's end.
func boundedSeries(start time.Time, intervalDays, widthDays, maxN int, until, clampEnd time.Time) []Window {
	var out []Window
	for cur := start; len(out) < maxN && !cur.After(until); cur = cur.AddDate(0, 0, intervalDays) {
		end := cur.AddDate(0, 0, widthDays)
		if !clampEnd.IsZero() && end.After(clampEnd) {
			end = clampEnd
		}
		out = append(out, Window{Start: cur, End: end})
	}
	return out
}

// planSeries builds the four recurring maintenance series off the
// planting date, bounded by the harvest window.
func planSeries(lc lifecycle, anchor time.Time, name string) []taskSpec {
	planting := lc.plantingDate(anchor)
	harvestStart := lc.harvest.Start
	harvestEnd := lc.harvest.End

	var out []taskSpec
	add := func(title string, wins []Window) {
		for _, w := range wins {
			out = append(out, taskSpec{typ: entities.TaskCultivate, title: title, win: w})
		}
	}

	// Fertilize is a spot event: zero width, terminated at harvest start.
	add("Fertilize "+name,
		boundedSeries(planting.AddDate(0, 0, fertilizeStartDays), fertilizeInterval, 0, fertilizeCap, harvestStart, time.Time{}))

	// Water runs through the whole harvest window, ends clamped to it.
	add("Water "+name,
		boundedSeries(planting.AddDate(0, 0, waterStartDays), waterInterval, waterWidthDays, waterCap, harvestEnd, harvestEnd))

	add("Weed around "+name,
		boundedSeries(planting.AddDate(0, 0, weedStartDays), weedInterval, weedWidthDays, weedCap, harvestStart, time.Time{}))

	add("Scout "+name+" for pests",
		boundedSeries(planting.AddDate(0, 0, scoutStartDays), scoutInterval, scoutWidthDays, scoutCap, harvestStart, time.Time{}))

	return out
}
