package models

import "time"

// Village holds the portal's village profile. The store allows multiple
// rows but the public site treats the first row as "the" village.
type Village struct {
	ID              uint     `gorm:"primaryKey" json:"id"`
	Name            string   `gorm:"uniqueIndex;size:200;not null" json:"village_name"`
	State           string   `gorm:"size:100;not null" json:"state"`
	District        string   `gorm:"size:100;not null" json:"district"`
	Taluka          string   `gorm:"size:100;not null" json:"taluka"`
	Population      *int     `json:"population"`
	TotalArea       *float64 `json:"total_area"` // square kilometers
	EstablishedYear *int     `json:"established_year"`

	Description string `gorm:"type:text" json:"description"`
	History     string `gorm:"type:text" json:"history"`
	Culture     string `gorm:"type:text" json:"culture"`
	Agriculture string `gorm:"type:text" json:"agriculture"`

	Phone   string `gorm:"size:20" json:"phone"`
	Email   string `gorm:"size:255" json:"email"`
	Address string `gorm:"type:text" json:"address"`

	PhotoPath string `gorm:"size:512" json:"village_photo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Village) TableName() string { return "villages" }
