package repository

import "sprout/entities"

type GuideRepository interface {
	CreateDoc(d *entities.GuideDoc) error
	BulkInsertChunks(cs []entities.GuideChunk) error
	AllChunks() ([]entities.GuideChunk, error)
	DocsByIDs(ids []uint) (map[uint]entities.GuideDoc, error)
}
