package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"sprout/entities"
	"sprout/pkg/croptask/repository"
)

type taskRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropTaskRepository { return &taskRepo{db} }

func (r *taskRepo) BulkInsert(ts []entities.CropTask) error {
	if len(ts) == 0 {
		return nil
	}
	return r.db.Create(&ts).Error
}

func (r *taskRepo) DeleteByPlan(planID uint) error {
	return r.db.Where("plan_id = ?", planID).Delete(&entities.CropTask{}).Error
}

func (r *taskRepo) ListByPlan(planID uint) ([]entities.CropTask, error) {
	var out []entities.CropTask
	if err := r.db.Where("plan_id = ?", planID).Order("start_date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *taskRepo) ListRange(seasonID uint, from, to string) ([]entities.CropTask, error) {
	var out []entities.CropTask
	q := r.db.Where("season_id = ?", seasonID)
	if from != "" {
		if s, err := time.Parse("2006-01-02", from); err == nil {
			q = q.Where("end_date >= ?", s)
		}
	}
	if to != "" {
		if e, err := time.Parse("2006-01-02", to); err == nil {
			q = q.Where("start_date <= ?", e)
		}
	}
	if err := q.Order("start_date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *taskRepo) PatchStatus(taskID uint, status string, qtyDone *int) error {
	upd := map[string]any{"status": status}
	if qtyDone != nil {
		upd["qty_done"] = *qtyDone
	}
	return r.db.Model(&entities.CropTask{}).Where("task_id = ?", taskID).Updates(upd).Error
}
