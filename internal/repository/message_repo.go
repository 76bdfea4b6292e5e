package repository

import (
	"gramseva/internal/models"

	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) List() ([]models.ContactMessage, error) {
	var list []models.ContactMessage
	err := r.db.Order("created_at DESC").Find(&list).Error
	return list, err
}

// Recent returns the n newest messages for the dashboard.
func (r *MessageRepository) Recent(n int) ([]models.ContactMessage, error) {
	var list []models.ContactMessage
	err := r.db.Order("created_at DESC").Limit(n).Find(&list).Error
	return list, err
}

func (r *MessageRepository) GetByID(id uint) (*models.ContactMessage, error) {
	var m models.ContactMessage
	if err := r.db.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MessageRepository) Create(m *models.ContactMessage) error {
	return r.db.Create(m).Error
}

func (r *MessageRepository) Update(m *models.ContactMessage) error {
	return r.db.Save(m).Error
}

// MarkRead flips is_read only, leaving every other field untouched.
func (r *MessageRepository) MarkRead(id uint) error {
	res := r.db.Model(&models.ContactMessage{}).Where("id = ?", id).Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *MessageRepository) Delete(id uint) error {
	return r.db.Delete(&models.ContactMessage{}, id).Error
}

func (r *MessageRepository) CountUnread() (int64, error) {
	var c int64
	err := r.db.Model(&models.ContactMessage{}).Where("is_read = ?", false).Count(&c).Error
	return c, err
}
