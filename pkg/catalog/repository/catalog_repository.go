package repository

import "sprout/entities"

type CatalogRepository interface {
	CreatePlantType(t *entities.PlantType) error
	CreateProfile(p *entities.PlantProfile) error
	CreateVariety(v *entities.Variety) error

	FindPlantType(id uint) (*entities.PlantType, error)
	FindProfile(id uint) (*entities.PlantProfile, error)
	FindVariety(id uint) (*entities.Variety, error)

	ListPlantTypes() ([]entities.PlantType, error)
	ListProfiles(plantTypeID uint) ([]entities.PlantProfile, error)
	ListVarieties(plantTypeID uint) ([]entities.Variety, error)

	CountPlantTypes() (int64, error)
}
