package models

import (
	"encoding/json"
	"time"

	"gramseva/internal/domain"
)

// Member is an elected or appointed panchayat member.
type Member struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Name          string `gorm:"size:200;not null" json:"name"`
	Position      string `gorm:"size:50;not null;index" json:"position"`
	ContactNumber string `gorm:"size:20" json:"contact_number"`
	Email         string `gorm:"size:255" json:"email"`
	Address       string `gorm:"type:text" json:"address"`

	Bio       string `gorm:"type:text" json:"bio"`
	PhotoPath string `gorm:"size:512;not null" json:"photo"`

	TermStartDate *time.Time `json:"term_start_date"`
	TermEndDate   *time.Time `json:"term_end_date"`

	FacebookURL    string `gorm:"size:512" json:"facebook_url"`
	WhatsappNumber string `gorm:"size:20" json:"whatsapp_number"`

	// no column default, same reasoning as Scheme.IsActive
	IsActive  bool      `gorm:"index" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Member) TableName() string { return "members" }

// PositionDisplay returns the human-readable label for the stored
// position code. Computed at read time, never persisted.
func (m *Member) PositionDisplay() string { return domain.PositionLabel(m.Position) }

func (m Member) MarshalJSON() ([]byte, error) {
	type alias Member
	return json.Marshal(struct {
		alias
		PositionDisplay string `json:"position_display"`
	}{alias(m), domain.PositionLabel(m.Position)})
}
