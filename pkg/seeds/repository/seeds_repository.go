package repository

import "sprout/entities"

type SeedRepository interface {
	Create(p *entities.SeedPacket) error
	BulkInsert(ps []entities.SeedPacket) error
	ListByUser(uid string) ([]entities.SeedPacket, error)
}
