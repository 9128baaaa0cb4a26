package repositoryImp

import (
	"gorm.io/gorm"

	"sprout/entities"
	"sprout/pkg/season/repository"
)

type seasonRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SeasonRepository { return &seasonRepo{db} }

func (r *seasonRepo) Create(s *entities.Season) error { return r.db.Create(s).Error }

func (r *seasonRepo) FindByID(id uint, uid string) (*entities.Season, error) {
	var s entities.Season
	if err := r.db.Where("season_id = ? AND user_id = ?", id, uid).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *seasonRepo) ListByUser(uid string) ([]entities.Season, error) {
	var out []entities.Season
	if err := r.db.Where("user_id = ?", uid).Order("year DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
