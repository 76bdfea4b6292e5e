package models

import (
	"encoding/json"
	"time"

	"gramseva/internal/domain"
)

// Scheme is a government scheme published on the portal.
type Scheme struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	SchemeName string `gorm:"size:200;not null" json:"scheme_name"`
	SchemeCode string `gorm:"uniqueIndex;size:100;not null" json:"scheme_code"`
	Category   string `gorm:"size:50;not null;index" json:"category"`
	Ministry   string `gorm:"size:200;not null" json:"ministry"`

	Description         string `gorm:"type:text;not null" json:"description"`
	Objectives          string `gorm:"type:text;not null" json:"objectives"`
	EligibilityCriteria string `gorm:"type:text;not null" json:"eligibility_criteria"`
	Benefits            string `gorm:"type:text;not null" json:"benefits"`

	ApplicationProcess string `gorm:"type:text;not null" json:"application_process"`
	RequiredDocuments  string `gorm:"type:text;not null" json:"required_documents"`
	ApplicationLink    string `gorm:"size:512" json:"application_link"`

	NodalOfficerName    string `gorm:"size:200" json:"nodal_officer_name"`
	NodalOfficerContact string `gorm:"size:20" json:"nodal_officer_contact"`

	LaunchDate *time.Time `json:"launch_date"`
	// no column default: a zero-value field next to a default tag is
	// dropped from the INSERT, so an explicit false would come back true.
	// The in-code default lives where records are constructed.
	IsActive bool `gorm:"index" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Scheme) TableName() string { return "schemes" }

func (s *Scheme) CategoryDisplay() string { return domain.SchemeCategoryLabel(s.Category) }

func (s Scheme) MarshalJSON() ([]byte, error) {
	type alias Scheme
	return json.Marshal(struct {
		alias
		CategoryDisplay string `json:"category_display"`
	}{alias(s), domain.SchemeCategoryLabel(s.Category)})
}
