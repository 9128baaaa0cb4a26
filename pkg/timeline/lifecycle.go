package timeline

import (
	"time"

	"sprout/entities"
)

// Planting methods on a crop plan.
const (
	MethodTransplant = "transplant"
	MethodDirectSeed = "direct_seed"
	MethodBoth       = "both"
)

// lifecycle holds the core one-time windows. seed/transplant/sow are nil
// when the planting method doesn't produce them; harvest always exists.
type lifecycle struct {
	seed       *Window
	transplant *Window
	sow        *Window
	harvest    Window
}

// plantingDate anchors maintenance work: transplant start if present,
// else direct-sow start, else the frost anchor itself.
func (lc lifecycle) plantingDate(anchor time.Time) time.Time {
	switch {
	case lc.transplant != nil:
		return lc.transplant.Start
	case lc.sow != nil:
		return lc.sow.Start
	default:
		return anchor
	}
}

func planLifecycle(plan *entities.CropPlan, t Timing, anchor time.Time) lifecycle {
	var lc lifecycle

	if plan.Method == MethodTransplant || plan.Method == MethodBoth {
		seed := buildWindow(anchor, plan.SeedOffsetDays,
			t.StartIndoorsWeeks, t.StartIndoorsWeeksMin, t.StartIndoorsWeeksMax,
			fallbackSeedWeeks, seedWindowDays, -1)
		lc.seed = &seed

		tr := buildWindow(anchor, plan.TransplantOffsetDays,
			t.TransplantWeeksAfterFrost, t.TransplantWeeksAfterFrostMin, t.TransplantWeeksAfterFrostMax,
			fallbackTransplantWeeks, transplantWindowDays, +1)
		lc.transplant = &tr
	}

	if plan.Method == MethodDirectSeed || plan.Method == MethodBoth {
		sow := buildWindow(anchor, plan.SowOffsetDays,
			t.SowWeeksFromFrost, t.SowWeeksFromFrostMin, t.SowWeeksFromFrostMax,
			fallbackSowWeeks, sowWindowDays, +1)
		lc.sow = &sow
	}

	lc.harvest = harvestWindow(plan, t, anchor, lc)
	return lc
}

// harvestWindow derives the single harvest task. The base date prefers
// the direct-sow date over the transplant date when both exist — the
// direct-sown crop typically finishes first. Width comes from the plan
// override, else the maturity range spread (floored at two weeks), else
// the default.
func harvestWindow(plan *entities.CropPlan, t Timing, anchor time.Time, lc lifecycle) Window {
	base := anchor
	switch {
	case lc.sow != nil:
		base = lc.sow.Start
	case lc.transplant != nil:
		base = lc.transplant.Start
	}

	dtm := fallbackDaysToMaturity
	if plan.DaysToMaturity != nil {
		dtm = *plan.DaysToMaturity
	} else if t.DaysToMaturity != nil {
		dtm = *t.DaysToMaturity
	}
	start := base.AddDate(0, 0, dtm)

	width := harvestWindowDays
	if plan.HarvestWindowDays != nil {
		if width = *plan.HarvestWindowDays; width < 0 {
			width = 0
		}
	} else if t.DaysToMaturityMin != nil && t.DaysToMaturityMax != nil && *t.DaysToMaturityMin < *t.DaysToMaturityMax {
		if spread := *t.DaysToMaturityMax - *t.DaysToMaturityMin; spread > width {
			width = spread
		}
	}
	return Window{Start: start, End: start.AddDate(0, 0, width)}
}
