package model

import "time"

// Like marks a post or a comment (exactly one of the two) as liked by a user.
type Like struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	UserID    string    `json:"user_id" gorm:"size:36;index;not null"`
	PostID    string    `json:"post_id,omitempty" gorm:"size:36;index"`
	CommentID string    `json:"comment_id,omitempty" gorm:"size:36;index"`
	CreatedAt time.Time `json:"created_at"`
}
