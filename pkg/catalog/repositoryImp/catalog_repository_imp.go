package repositoryImp

import (
	"gorm.io/gorm"

	"sprout/entities"
	"sprout/pkg/catalog/repository"
)

type catalogRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CatalogRepository { return &catalogRepo{db} }

func (r *catalogRepo) CreatePlantType(t *entities.PlantType) error { return r.db.Create(t).Error }
func (r *catalogRepo) CreateProfile(p *entities.PlantProfile) error { return r.db.Create(p).Error }
func (r *catalogRepo) CreateVariety(v *entities.Variety) error { return r.db.Create(v).Error }

func (r *catalogRepo) FindPlantType(id uint) (*entities.PlantType, error) {
	var t entities.PlantType
	if err := r.db.First(&t, "plant_type_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *catalogRepo) FindProfile(id uint) (*entities.PlantProfile, error) {
	var p entities.PlantProfile
	if err := r.db.First(&p, "profile_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *catalogRepo) FindVariety(id uint) (*entities.Variety, error) {
	var v entities.Variety
	if err := r.db.First(&v, "variety_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *catalogRepo) ListPlantTypes() ([]entities.PlantType, error) {
	var out []entities.PlantType
	if err := r.db.Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *catalogRepo) ListProfiles(plantTypeID uint) ([]entities.PlantProfile, error) {
	var out []entities.PlantProfile
	q := r.db.Order("name ASC")
	if plantTypeID != 0 {
		q = q.Where("plant_type_id = ?", plantTypeID)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *catalogRepo) ListVarieties(plantTypeID uint) ([]entities.Variety, error) {
	var out []entities.Variety
	q := r.db.Order("name ASC")
	if plantTypeID != 0 {
		q = q.Where("plant_type_id = ?", plantTypeID)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *catalogRepo) CountPlantTypes() (int64, error) {
	var n int64
	if err := r.db.Model(&entities.PlantType{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
