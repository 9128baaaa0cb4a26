package entities

import "time"

// JournalEntry is a dated garden observation (note, photo, measurement).
type JournalEntry struct {
	EntryID  uint      `gorm:"primaryKey" json:"entry_id"`
	GardenID uint      `gorm:"index" json:"garden_id"`
	UserID   string    `gorm:"index" json:"user_id"`
	Date     time.Time `json:"date"`
	Note     string    `json:"note"`
	PhotoURL string    `json:"photo_url"`
	HeightCM *float64  `json:"height_cm"`

	CreatedAt time.Time
}
