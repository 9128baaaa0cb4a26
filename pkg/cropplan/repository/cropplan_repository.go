package repository

import "sprout/entities"

type CropPlanRepository interface {
	Create(p *entities.CropPlan) error
	FindByID(id uint, uid string) (*entities.CropPlan, error)
	ListBySeason(seasonID uint, uid string) ([]entities.CropPlan, error)
	MarkScheduled(id uint, qty int) error
}
