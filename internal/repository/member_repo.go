package repository

import (
	"gramseva/internal/models"

	"gorm.io/gorm"
)

type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// List returns members ordered by (position, name). position narrows to
// one position; activeOnly drops inactive members.
func (r *MemberRepository) List(activeOnly bool, position string) ([]models.Member, error) {
	var list []models.Member
	q := r.db.Order("position, name")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if position != "" {
		q = q.Where("position = ?", position)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *MemberRepository) GetByID(id uint) (*models.Member, error) {
	var m models.Member
	if err := r.db.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MemberRepository) Create(m *models.Member) error {
	return r.db.Create(m).Error
}

func (r *MemberRepository) Update(m *models.Member) error {
	return r.db.Save(m).Error
}

func (r *MemberRepository) Delete(id uint) error {
	return r.db.Delete(&models.Member{}, id).Error
}

func (r *MemberRepository) Count() (int64, error) {
	var c int64
	err := r.db.Model(&models.Member{}).Count(&c).Error
	return c, err
}
