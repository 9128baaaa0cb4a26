package entities

import "time"

type SeedPacket struct {
	PacketID    uint   `gorm:"primaryKey" json:"packet_id"`
	UserID      string `gorm:"index" json:"user_id"`
	PlantTypeID *uint  `json:"plant_type_id"`
	VarietyID   *uint  `json:"variety_id"`
	PlantName   string `json:"plant_name"`
	VarietyName string `json:"variety_name"`
	Vendor      string `json:"vendor"`
	PackedFor   int    `json:"packed_for"` // year printed on the packet
	SeedCount   *int   `json:"seed_count"`
	Notes       string `json:"notes"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
