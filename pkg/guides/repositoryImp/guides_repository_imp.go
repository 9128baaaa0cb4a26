package repositoryImp

import (
	"gorm.io/gorm"

	"sprout/entities"
	"sprout/pkg/guides/repository"
)

type guideRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.GuideRepository { return &guideRepo{db} }

func (r *guideRepo) CreateDoc(d *entities.GuideDoc) error { return r.db.Create(d).Error }

func (r *guideRepo) BulkInsertChunks(cs []entities.GuideChunk) error {
	if len(cs) == 0 {
		return nil
	}
	return r.db.Create(&cs).Error
}

func (r *guideRepo) AllChunks() ([]entities.GuideChunk, error) {
	var out []entities.GuideChunk
	if err := r.db.Order("doc_id ASC, ord ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *guideRepo) DocsByIDs(ids []uint) (map[uint]entities.GuideDoc, error) {
	out := map[uint]entities.GuideDoc{}
	if len(ids) == 0 {
		return out, nil
	}
	var docs []entities.GuideDoc
	if err := r.db.Where("doc_id IN ?", ids).Find(&docs).Error; err != nil {
		return nil, err
	}
	for _, d := range docs {
		out[d.DocID] = d
	}
	return out, nil
}
