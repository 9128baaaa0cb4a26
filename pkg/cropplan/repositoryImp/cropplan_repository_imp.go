package repositoryImp

import (
	"gorm.io/gorm"

	"sprout/entities"
	"sprout/pkg/cropplan/repository"
)

type planRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropPlanRepository { return &planRepo{db} }

func (r *planRepo) Create(p *entities.CropPlan) error { return r.db.Create(p).Error }

func (r *planRepo) FindByID(id uint, uid string) (*entities.CropPlan, error) {
	var p entities.CropPlan
	if err := r.db.Where("plan_id = ? AND user_id = ?", id, uid).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *planRepo) ListBySeason(seasonID uint, uid string) ([]entities.CropPlan, error) {
	var out []entities.CropPlan
	if err := r.db.Where("season_id = ? AND user_id = ?", seasonID, uid).Order("plan_id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *planRepo) MarkScheduled(id uint, qty int) error {
	return r.db.Model(&entities.CropPlan{}).Where("plan_id = ?", id).
		Updates(map[string]any{"status": "scheduled", "quantity_scheduled": qty}).Error
}
