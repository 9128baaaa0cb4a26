package repositoryImp

import (
	"gorm.io/gorm"

	"sprout/entities"
	"sprout/pkg/seeds/repository"
)

type seedRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SeedRepository { return &seedRepo{db} }

func (r *seedRepo) Create(p *entities.SeedPacket) error { return r.db.Create(p).Error }

func (r *seedRepo) BulkInsert(ps []entities.SeedPacket) error {
	if len(ps) == 0 {
		return nil
	}
	return r.db.Create(&ps).Error
}

func (r *seedRepo) ListByUser(uid string) ([]entities.SeedPacket, error) {
	var out []entities.SeedPacket
	if err := r.db.Where("user_id = ?", uid).Order("plant_name ASC, variety_name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
