package models

import (
	"encoding/json"
	"time"

	"gramseva/internal/domain"
)

// GalleryImage is a single photo in the village gallery.
type GalleryImage struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Category    string `gorm:"size:50;not null;index" json:"category"`
	ImagePath   string `gorm:"size:512;not null" json:"image"`

	PhotographerName string     `gorm:"size:200" json:"photographer_name"`
	EventDate        *time.Time `json:"event_date"`
	Location         string     `gorm:"size:200" json:"location"`

	Featured     bool `gorm:"default:false;index" json:"featured"`
	DisplayOrder int  `gorm:"default:0" json:"display_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (GalleryImage) TableName() string { return "gallery_images" }

func (g *GalleryImage) CategoryDisplay() string { return domain.GalleryCategoryLabel(g.Category) }

func (g GalleryImage) MarshalJSON() ([]byte, error) {
	type alias GalleryImage
	return json.Marshal(struct {
		alias
		CategoryDisplay string `json:"category_display"`
	}{alias(g), domain.GalleryCategoryLabel(g.Category)})
}
