package timeline

import "time"

// Default window widths and fallback week counts. The widths are what a
// task spans when no usable min/max range exists.
const (
	seedWindowDays       = 5
	transplantWindowDays = 5
	sowWindowDays        = 7
	harvestWindowDays    = 14
	shortWindowDays      = 3

	fallbackSeedWeeks       = 6
	fallbackTransplantWeeks = 2
	fallbackSowWeeks        = 0

	fallbackDaysToMaturity = 80
)

type Window struct {
	Start time.Time
	End   time.Time
}

// buildWindow computes one task window off the anchor.
//
// Start: explicit plan offset if defined (zero counts as defined), else
// weeks*7, else the fallback week count. dir is -1 for before-frost
// windows (seed starting) and +1 for after-frost ones.
//
// End: when a valid ordered min/max week pair exists, the late edge comes
// from the looser bound — the minimum weeks figure for before-frost
// windows (fewer weeks of lead time = later start) and the maximum for
// after-frost ones. An inverted or equal pair is treated as absent, never
// swapped. Without a usable pair the window is start+defaultWindowDays.
func buildWindow(anchor time.Time, explicitOffsetDays, weeks, weeksMin, weeksMax *int, fallbackWeeks, defaultWindowDays, dir int) Window {
	days := dir * fallbackWeeks * 7
	if explicitOffsetDays != nil {
		days = *explicitOffsetDays
	} else if weeks != nil {
		days = dir * *weeks * 7
	}
	start := anchor.AddDate(0, 0, days)

	if weeksMin != nil && weeksMax != nil && *weeksMin < *weeksMax {
		w := *weeksMax
		if dir < 0 {
			w = *weeksMin
		}
		end := anchor.AddDate(0, 0, dir*w*7)
		// An explicit offset can land the start past the range edge;
		// keep the default width then so start <= end holds.
		if !end.Before(start) {
			return Window{Start: start, End: end}
		}
	}
	return Window{Start: start, End: start.AddDate(0, 0, defaultWindowDays)}
}
