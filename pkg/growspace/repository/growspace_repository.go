package repository

import "sprout/entities"

type GrowSpaceRepository interface {
	Create(g *entities.GrowSpace) error
	ListByUser(uid string) ([]entities.GrowSpace, error)
}
