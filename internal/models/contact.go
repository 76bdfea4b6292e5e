package models

import "time"

// ContactMessage is a public contact-form submission. Created by anyone;
// only staff may read it or flip its tracking fields.
type ContactMessage struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:200;not null" json:"name"`
	Email   string `gorm:"size:255;not null" json:"email"`
	Phone   string `gorm:"size:20" json:"phone"`
	Subject string `gorm:"size:300;not null" json:"subject"`
	Message string `gorm:"type:text;not null" json:"message"`

	IsRead       bool   `gorm:"default:false;index" json:"is_read"`
	IsReplied    bool   `gorm:"default:false" json:"is_replied"`
	ReplyMessage string `gorm:"type:text" json:"reply_message"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ContactMessage) TableName() string { return "contact_messages" }
