package repositoryImp

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sprout/entities"
	"sprout/pkg/settings/repository"
)

type settingsRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SettingsRepository { return &settingsRepo{db} }

func (r *settingsRepo) Find(uid string) (*entities.UserSettings, error) {
	var s entities.UserSettings
	if err := r.db.Where("user_id = ?", uid).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepo) Upsert(s *entities.UserSettings) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(s).Error
}
