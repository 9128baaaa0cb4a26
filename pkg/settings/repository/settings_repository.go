package repository

import "sprout/entities"

type SettingsRepository interface {
	Find(uid string) (*entities.UserSettings, error)
	Upsert(s *entities.UserSettings) error
}
