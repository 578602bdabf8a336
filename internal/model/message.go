package model

import "time"

// Message is a direct message between two users. Delivery is plain
// request/response; there is no push channel here.
type Message struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	SenderID    string    `json:"sender_id" gorm:"size:36;index;not null"`
	RecipientID string    `json:"recipient_id" gorm:"size:36;index;not null"`
	Content     string    `json:"content" gorm:"type:text;not null"`
	IsRead      bool      `json:"is_read" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
}
