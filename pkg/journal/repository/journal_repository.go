package repository

import "sprout/entities"

type JournalRepository interface {
	Create(e *entities.JournalEntry) error
	Recent(gardenID uint, days int) ([]entities.JournalEntry, error)
}
