package entities

import "time"

// CropPlan is a user's decision to grow one cultivar in one season.
// The engine reads it, generates the task calendar, and writes back only
// Status and QuantityScheduled.
type CropPlan struct {
	PlanID      uint   `gorm:"primaryKey" json:"plan_id"`
	UserID      string `gorm:"index" json:"user_id"`
	SeasonID    uint   `gorm:"index" json:"season_id"`
	GardenID    *uint  `json:"garden_id"`
	PlantTypeID *uint  `json:"plant_type_id"`
	ProfileID   *uint  `json:"profile_id"`
	VarietyID   *uint  `json:"variety_id"`

	Method string `json:"method"` // transplant|direct_seed|both

	// Explicit day offsets relative to the frost anchor (signed, zero is
	// a real value). nil defers to variety/profile timing.
	SeedOffsetDays       *int `json:"seed_offset_days"`
	TransplantOffsetDays *int `json:"transplant_offset_days"`
	SowOffsetDays        *int `json:"sow_offset_days"`

	DaysToMaturity    *int `json:"days_to_maturity"`
	HarvestWindowDays *int `json:"harvest_window_days"`

	QuantityPlanned   int    `json:"quantity_planned"`
	QuantityScheduled int    `json:"quantity_scheduled"`
	Color             string `json:"color"`
	Status            string `json:"status"` // draft|scheduled

	CreatedAt time.Time
	UpdatedAt time.Time
}
