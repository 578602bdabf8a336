package model

import "time"

// StudentResource is study material an institution publishes for its
// students: a past question archive, a handbook, a portal link.
type StudentResource struct {
	ID            string    `json:"id" gorm:"primaryKey;size:36"`
	InstitutionID string    `json:"institution_id" gorm:"size:36;index;not null"`
	Title         string    `json:"title" gorm:"size:255;not null"`
	Description   string    `json:"description,omitempty" gorm:"size:2048"`
	URL           string    `json:"url,omitempty" gorm:"size:512"`
	ResourceType  string    `json:"resource_type,omitempty" gorm:"size:64"`
	CreatedBy     string    `json:"created_by" gorm:"size:36;index"`
	CreatedAt     time.Time `json:"created_at"`
}
