package service

import "sprout/entities"

type GuideService interface {
	UpsertDocument(title, tags, text, sourceURL string) (*entities.GuideDoc, int, error)
	Search(query string, k int) ([]entities.GuideChunk, error)
	DocsMeta(ids []uint) (map[uint]entities.GuideDoc, error)
}
