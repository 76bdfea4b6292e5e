package repository

import (
	"errors"

	"gramseva/internal/models"

	"gorm.io/gorm"
)

type VillageRepository struct {
	db *gorm.DB
}

func NewVillageRepository(db *gorm.DB) *VillageRepository {
	return &VillageRepository{db: db}
}

// First returns the row the public site treats as "the" village, or
// (nil, nil) when none is configured yet. Callers must handle the nil
// case instead of faulting.
func (r *VillageRepository) First() (*models.Village, error) {
	var v models.Village
	err := r.db.Order("id").First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VillageRepository) GetByID(id uint) (*models.Village, error) {
	var v models.Village
	if err := r.db.First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VillageRepository) List() ([]models.Village, error) {
	var list []models.Village
	err := r.db.Order("id").Find(&list).Error
	return list, err
}

// NameExists reports whether another village row already uses name.
func (r *VillageRepository) NameExists(name string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.Model(&models.Village{}).Where("name = ?", name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *VillageRepository) Create(v *models.Village) error {
	return r.db.Create(v).Error
}

func (r *VillageRepository) Update(v *models.Village) error {
	return r.db.Save(v).Error
}

func (r *VillageRepository) Delete(id uint) error {
	return r.db.Delete(&models.Village{}, id).Error
}
