package repository

import (
	"gramseva/internal/models"

	"gorm.io/gorm"
)

type GalleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

const galleryOrder = "featured DESC, display_order DESC, event_date DESC, created_at DESC"

// List returns gallery images in display order. featuredOnly is the
// narrowing applied to non-staff callers.
func (r *GalleryRepository) List(featuredOnly bool, category string) ([]models.GalleryImage, error) {
	var list []models.GalleryImage
	q := r.db.Order(galleryOrder)
	if featuredOnly {
		q = q.Where("featured = ?", true)
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := q.Find(&list).Error
	return list, err
}

// Featured returns up to n featured images for the home page.
func (r *GalleryRepository) Featured(n int) ([]models.GalleryImage, error) {
	var list []models.GalleryImage
	err := r.db.Where("featured = ?", true).Order(galleryOrder).Limit(n).Find(&list).Error
	return list, err
}

func (r *GalleryRepository) GetByID(id uint) (*models.GalleryImage, error) {
	var g models.GalleryImage
	if err := r.db.First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GalleryRepository) Create(g *models.GalleryImage) error {
	return r.db.Create(g).Error
}

func (r *GalleryRepository) Update(g *models.GalleryImage) error {
	return r.db.Save(g).Error
}

func (r *GalleryRepository) Delete(id uint) error {
	return r.db.Delete(&models.GalleryImage{}, id).Error
}

func (r *GalleryRepository) Count() (int64, error) {
	var c int64
	err := r.db.Model(&models.GalleryImage{}).Count(&c).Error
	return c, err
}
