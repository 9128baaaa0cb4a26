package repositoryImp

import (
	"gorm.io/gorm"

	"sprout/entities"
	"sprout/pkg/growspace/repository"
)

type spaceRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.GrowSpaceRepository { return &spaceRepo{db} }

func (r *spaceRepo) Create(g *entities.GrowSpace) error { return r.db.Create(g).Error }

func (r *spaceRepo) ListByUser(uid string) ([]entities.GrowSpace, error) {
	var out []entities.GrowSpace
	if err := r.db.Where("user_id = ?", uid).Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
