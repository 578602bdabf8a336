package model

import "time"

// Complaint is a moderation report against a post, comment or user.
type Complaint struct {
	ID                string    `json:"id" gorm:"primaryKey;size:36"`
	ReporterID        string    `json:"reporter_id" gorm:"size:36;index;not null"`
	ReportedPostID    string    `json:"reported_post_id,omitempty" gorm:"size:36"`
	ReportedCommentID string    `json:"reported_comment_id,omitempty" gorm:"size:36"`
	ReportedUserID    string    `json:"reported_user_id,omitempty" gorm:"size:36"`
	Reason            string    `json:"reason" gorm:"size:2048;not null"`
	IsResolved        bool      `json:"is_resolved" gorm:"default:false"`
	CreatedAt         time.Time `json:"created_at"`
}
