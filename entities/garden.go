package entities

import "time"

type Garden struct {
	GardenID uint     `gorm:"primaryKey" json:"garden_id"`
	UserID   string   `gorm:"index" json:"user_id"`
	Name     string   `json:"name"`
	Kind     string   `json:"kind"` // inground|raised|container
	AreaSqM  *float64 `json:"area_sqm"`
	Notes    string   `json:"notes"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// GrowSpace is an indoor seed-starting setup (shelf, tent, windowsill).
type GrowSpace struct {
	SpaceID      uint   `gorm:"primaryKey" json:"space_id"`
	UserID       string `gorm:"index" json:"user_id"`
	Name         string `json:"name"`
	Kind         string `json:"kind"` // shelf|tent|windowsill
	LightHours   *int   `json:"light_hours"`
	TrayCapacity *int   `json:"tray_capacity"`
	Heated       bool   `json:"heated"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
