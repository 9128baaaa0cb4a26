package entities

import "time"

// Task types. Derived maintenance beyond bed prep all lands on
// TaskCultivate with a distinguishing title.
const (
	TaskSeed       = "seed"
	TaskTransplant = "transplant"
	TaskDirectSeed = "direct_seed"
	TaskHarvest    = "harvest"
	TaskBedPrep    = "bed_prep"
	TaskCultivate  = "cultivate"
)

// CropTask is one generated calendar entry. A plan's whole task set is
// replaced on every regeneration; TaskID and timestamps are the only
// fields that differ between two identical runs.
type CropTask struct {
	TaskID   uint   `gorm:"primaryKey" json:"task_id"`
	PlanID   uint   `gorm:"index" json:"plan_id"`
	SeasonID uint   `gorm:"index" json:"season_id"`
	Type     string `json:"type"` // seed|transplant|direct_seed|harvest|bed_prep|cultivate
	Title    string `json:"title"`

	// StartDate <= EndDate always; equal for spot events.
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`

	QtyTarget int    `json:"qty_target"`
	QtyDone   int    `json:"qty_done"`
	Color     string `json:"color"`
	Status    string `json:"status"` // todo|done|skipped

	CreatedAt time.Time
	UpdatedAt time.Time
}
