package entities

import "time"

type PlantType struct {
	PlantTypeID uint   `gorm:"primaryKey" json:"plant_type_id"`
	Name        string `json:"name"` // e.g. Tomato, Carrot
	Category    string `json:"category"` // vegetable|herb|flower|fruit
	Color       string `json:"color"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PlantProfile carries generic timing defaults for a plant type.
// All timing fields are pointers: nil means "not specified here",
// which matters for merge precedence in the timeline resolver.
type PlantProfile struct {
	ProfileID   uint   `gorm:"primaryKey" json:"profile_id"`
	PlantTypeID uint   `gorm:"index" json:"plant_type_id"`
	Name        string `json:"name"`

	StartIndoorsWeeks    *int `json:"start_indoors_weeks"`
	StartIndoorsWeeksMin *int `json:"start_indoors_weeks_min"`
	StartIndoorsWeeksMax *int `json:"start_indoors_weeks_max"`

	TransplantWeeksAfterFrost    *int `json:"transplant_weeks_after_frost"`
	TransplantWeeksAfterFrostMin *int `json:"transplant_weeks_after_frost_min"`
	TransplantWeeksAfterFrostMax *int `json:"transplant_weeks_after_frost_max"`

	// Signed: negative means sow before last frost (peas, spinach).
	SowWeeksFromFrost    *int `json:"sow_weeks_from_frost"`
	SowWeeksFromFrostMin *int `json:"sow_weeks_from_frost_min"`
	SowWeeksFromFrostMax *int `json:"sow_weeks_from_frost_max"`

	DaysToMaturity    *int `json:"days_to_maturity"`
	DaysToMaturityMin *int `json:"days_to_maturity_min"`
	DaysToMaturityMax *int `json:"days_to_maturity_max"`

	NeedsTrellis *bool `json:"needs_trellis"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Variety is a named cultivar of a plant type. Same optional timing
// fields as PlantProfile; a variety only fills in what its vendor lists.
type Variety struct {
	VarietyID   uint   `gorm:"primaryKey" json:"variety_id"`
	PlantTypeID uint   `gorm:"index" json:"plant_type_id"`
	ProfileID   *uint  `gorm:"index" json:"profile_id"`
	Name        string `json:"name"` // e.g. Brandywine, Sugar Snap
	Vendor      string `json:"vendor"`

	StartIndoorsWeeks    *int `json:"start_indoors_weeks"`
	StartIndoorsWeeksMin *int `json:"start_indoors_weeks_min"`
	StartIndoorsWeeksMax *int `json:"start_indoors_weeks_max"`

	TransplantWeeksAfterFrost    *int `json:"transplant_weeks_after_frost"`
	TransplantWeeksAfterFrostMin *int `json:"transplant_weeks_after_frost_min"`
	TransplantWeeksAfterFrostMax *int `json:"transplant_weeks_after_frost_max"`

	SowWeeksFromFrost    *int `json:"sow_weeks_from_frost"`
	SowWeeksFromFrostMin *int `json:"sow_weeks_from_frost_min"`
	SowWeeksFromFrostMax *int `json:"sow_weeks_from_frost_max"`

	DaysToMaturity    *int `json:"days_to_maturity"`
	DaysToMaturityMin *int `json:"days_to_maturity_min"`
	DaysToMaturityMax *int `json:"days_to_maturity_max"`

	NeedsTrellis *bool `json:"needs_trellis"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
