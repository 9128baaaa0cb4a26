package entities

import "time"

// Season pins one growing year for a user. Frost dates are stored as
// YYYY-MM-DD strings so an unset date is just "" and a bad value can be
// reported instead of silently zeroed.
type Season struct {
	SeasonID       uint   `gorm:"primaryKey" json:"season_id"`
	UserID         string `gorm:"index" json:"user_id"`
	Name           string `json:"name"` // e.g. "Spring 2026"
	Year           int    `json:"year"`
	LastFrostDate  string `json:"last_frost_date"`
	FirstFrostDate string `json:"first_frost_date"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserSettings holds the personal fallback frost date. It may have been
// captured in any historical year; only month/day are meaningful.
type UserSettings struct {
	UserID        string `gorm:"primaryKey" json:"user_id"`
	LastFrostDate string `json:"last_frost_date"`
	Hemisphere    string `json:"hemisphere"` // north|south

	CreatedAt time.Time
	UpdatedAt time.Time
}
