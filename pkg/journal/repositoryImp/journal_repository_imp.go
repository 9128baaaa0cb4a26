package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"sprout/entities"
	"sprout/pkg/journal/repository"
)

type journalRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.JournalRepository { return &journalRepo{db} }

func (r *journalRepo) Create(e *entities.JournalEntry) error { return r.db.Create(e).Error }

func (r *journalRepo) Recent(gardenID uint, days int) ([]entities.JournalEntry, error) {
	var out []entities.JournalEntry
	cut := time.Now().AddDate(0, 0, -days)
	if err := r.db.Where("garden_id = ? AND date >= ?", gardenID, cut).Order("date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
