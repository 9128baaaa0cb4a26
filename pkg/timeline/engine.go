// Package timeline derives a crop plan's full task calendar from its
// effective timing and the season's frost anchor. Everything here is
// pure: same inputs, same output, no clock and no storage.
package timeline

import (
	"time"

	"sprout/entities"
)

// Names carries the display strings used for task titles. Plant type is
// loaded only for this; it plays no part in the date math.
type Names struct {
	PlantType string
	Variety   string
}

func (n Names) display() string {
	switch {
	case n.PlantType != "" && n.Variety != "":
		return n.PlantType + " (" + n.Variety + ")"
	case n.PlantType != "":
		return n.PlantType
	case n.Variety != "":
		return n.Variety
	default:
		return "crop"
	}
}

// Generate builds the complete replace-set of tasks for one crop plan.
// The caller resolves timing and anchor first; from there generation
// cannot fail, only shrink (skipped maintenance, capped series).
func Generate(plan *entities.CropPlan, t Timing, names Names, anchor time.Time) []entities.CropTask {
	name := names.display()
	lc := planLifecycle(plan, t, anchor)

	var specs []taskSpec
	if lc.seed != nil {
		specs = append(specs, taskSpec{
			typ: entities.TaskSeed, title: "Start " + name + " seeds indoors",
			win: *lc.seed, qty: plan.QuantityPlanned,
		})
	}
	if lc.transplant != nil {
		specs = append(specs, taskSpec{
			typ: entities.TaskTransplant, title: "Transplant " + name,
			win: *lc.transplant, qty: plan.QuantityPlanned,
		})
	}
	if lc.sow != nil {
		specs = append(specs, taskSpec{
			typ: entities.TaskDirectSeed, title: "Direct sow " + name,
			win: *lc.sow, qty: plan.QuantityPlanned,
		})
	}
	specs = append(specs, taskSpec{
		typ: entities.TaskHarvest, title: "Harvest " + name,
		win: lc.harvest, qty: plan.QuantityPlanned,
	})

	specs = append(specs, planMaintenance(plan, t, lc, anchor, name)...)
	specs = append(specs, planSeries(lc, anchor, name)...)

	out := make([]entities.CropTask, 0, len(specs))
	for _, sp := range specs {
		out = append(out, entities.CropTask{
			PlanID:    plan.PlanID,
			SeasonID:  plan.SeasonID,
			Type:      sp.typ,
			Title:     sp.title,
			StartDate: sp.win.Start,
			EndDate:   sp.win.End,
			QtyTarget: sp.qty,
			Color:     plan.Color,
			Status:    "todo",
		})
	}
	return out
}
