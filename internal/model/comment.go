package model

import "time"

// Comment belongs to a post; replies reference a parent comment.
type Comment struct {
	ID              string    `json:"id" gorm:"primaryKey;size:36"`
	Content         string    `json:"content" gorm:"type:text;not null"`
	AuthorID        string    `json:"author_id" gorm:"size:36;index;not null"`
	PostID          string    `json:"post_id" gorm:"size:36;index;not null"`
	ParentCommentID string    `json:"parent_comment_id,omitempty" gorm:"size:36;index"`
	CreatedAt       time.Time `json:"created_at"`

	Author *User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}
