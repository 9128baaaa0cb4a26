package repository

import "sprout/entities"

type SeasonRepository interface {
	Create(s *entities.Season) error
	FindByID(id uint, uid string) (*entities.Season, error)
	ListByUser(uid string) ([]entities.Season, error)
}
