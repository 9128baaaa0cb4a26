package repositoryImp

import (
	"gorm.io/gorm"

	"sprout/entities"
	"sprout/pkg/garden/repository"
)

type gardenRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.GardenRepository { return &gardenRepo{db} }

func (r *gardenRepo) Create(g *entities.Garden) error { return r.db.Create(g).Error }

func (r *gardenRepo) FindByID(id uint, uid string) (*entities.Garden, error) {
	var g entities.Garden
	if err := r.db.Where("garden_id = ? AND user_id = ?", id, uid).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *gardenRepo) ListByUser(uid string) ([]entities.Garden, error) {
	var out []entities.Garden
	if err := r.db.Where("user_id = ?", uid).Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
