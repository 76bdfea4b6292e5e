package repository

import (
	"gramseva/internal/models"

	"gorm.io/gorm"
)

type SchemeRepository struct {
	db *gorm.DB
}

func NewSchemeRepository(db *gorm.DB) *SchemeRepository {
	return &SchemeRepository{db: db}
}

// List returns schemes newest-launch first, with NULL launch dates
// sorted last ("launch_date IS NULL" works on both MySQL and SQLite).
// category narrows the result; activeOnly drops retired schemes.
func (r *SchemeRepository) List(activeOnly bool, category string) ([]models.Scheme, error) {
	var list []models.Scheme
	q := r.db.Order("launch_date IS NULL, launch_date DESC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := q.Find(&list).Error
	return list, err
}

// Recent returns the n most recently launched active schemes.
func (r *SchemeRepository) Recent(n int) ([]models.Scheme, error) {
	var list []models.Scheme
	err := r.db.Where("is_active = ?", true).
		Order("launch_date IS NULL, launch_date DESC").
		Limit(n).Find(&list).Error
	return list, err
}

func (r *SchemeRepository) GetByID(id uint) (*models.Scheme, error) {
	var s models.Scheme
	if err := r.db.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// CodeExists reports whether another scheme already uses code.
func (r *SchemeRepository) CodeExists(code string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.Model(&models.Scheme{}).Where("scheme_code = ?", code)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *SchemeRepository) Create(s *models.Scheme) error {
	return r.db.Create(s).Error
}

func (r *SchemeRepository) Update(s *models.Scheme) error {
	return r.db.Save(s).Error
}

func (r *SchemeRepository) Delete(id uint) error {
	return r.db.Delete(&models.Scheme{}, id).Error
}

func (r *SchemeRepository) Count() (int64, error) {
	var c int64
	err := r.db.Model(&models.Scheme{}).Count(&c).Error
	return c, err
}
