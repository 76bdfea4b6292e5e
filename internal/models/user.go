package models

import (
	"time"

	"gramseva/internal/domain"
)

// User is a portal account. Only staff accounts can mutate data; the
// record exists purely for login and policy decisions.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         string    `gorm:"size:20;not null;index" json:"role"` // STAFF | VIEWER
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u *User) IsStaff() bool { return u.Role == domain.RoleStaff }
