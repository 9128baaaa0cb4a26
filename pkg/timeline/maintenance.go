package timeline

import (
	"time"

	"sprout/entities"
)

// taskSpec is an engine-internal task before it becomes a CropTask row.
type taskSpec struct {
	typ   string
	title string
	win   Window
	qty   int
}

// planMaintenance derives the one-time upkeep tasks from lifecycle dates
// and trait flags. A missing trigger just skips the task; none of these
// branches can fail.
func planMaintenance(plan *entities.CropPlan, t Timing, lc lifecycle, anchor time.Time, name string) []taskSpec {
	planting := lc.plantingDate(anchor)
	var out []taskSpec

	out = append(out, taskSpec{
		typ:   entities.TaskBedPrep,
		title: "Prepare bed for " + name,
		win:   Window{Start: planting.AddDate(0, 0, -14), End: planting.AddDate(0, 0, -7)},
	})

	if lc.seed != nil && lc.transplant != nil {
		out = append(out, taskSpec{
			typ:   entities.TaskCultivate,
			title: "Harden off " + name,
			win: Window{
				Start: lc.transplant.Start.AddDate(0, 0, -10),
				End:   lc.transplant.Start.AddDate(0, 0, -1),
			},
		})
	}

	if lc.seed != nil && longSeasonStart(plan, t) {
		out = append(out, taskSpec{
			typ:   entities.TaskCultivate,
			title: "Pot up " + name,
			win: Window{
				Start: lc.seed.Start.AddDate(0, 0, 24),
				End:   lc.seed.Start.AddDate(0, 0, 27),
			},
		})
	}

	if t.TrellisRequired() {
		out = append(out, taskSpec{
			typ:   entities.TaskCultivate,
			title: "Install trellis for " + name,
			win:   Window{Start: planting, End: planting.AddDate(0, 0, shortWindowDays)},
		})
	}

	out = append(out, taskSpec{
		typ:   entities.TaskCultivate,
		title: "Mulch " + name,
		win:   Window{Start: planting.AddDate(0, 0, 7), End: planting.AddDate(0, 0, 10)},
	})

	return out
}

// longSeasonStart: seedlings live indoors long enough to outgrow their
// cells — six or more weeks of lead time, by either timing source or an
// explicit offset of -42 days or earlier.
func longSeasonStart(plan *entities.CropPlan, t Timing) bool {
	if t.StartIndoorsWeeks != nil && *t.StartIndoorsWeeks >= 6 {
		return true
	}
	return plan.SeedOffsetDays != nil && *plan.SeedOffsetDays <= -42
}
