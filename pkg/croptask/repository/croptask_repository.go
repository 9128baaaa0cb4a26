package repository

import "sprout/entities"

type CropTaskRepository interface {
	BulkInsert([]entities.CropTask) error
	DeleteByPlan(planID uint) error
	ListByPlan(planID uint) ([]entities.CropTask, error)
	ListRange(seasonID uint, from, to string) ([]entities.CropTask, error)
	PatchStatus(taskID uint, status string, qtyDone *int) error
}
