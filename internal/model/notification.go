package model

import "time"

// NotificationType classifies what triggered a notification.
type NotificationType string

const (
	NotificationLike          NotificationType = "like"
	NotificationComment       NotificationType = "comment"
	NotificationFollow        NotificationType = "follow"
	NotificationMention       NotificationType = "mention"
	NotificationChannelInvite NotificationType = "channel_invite"
)

// Notification is stored per recipient; Content is a serialized JSON payload
// describing the triggering entity.
type Notification struct {
	ID        string           `json:"id" gorm:"primaryKey;size:36"`
	UserID    string           `json:"user_id" gorm:"size:36;index;not null"`
	Type      NotificationType `json:"notification_type" gorm:"size:32;not null"`
	Content   string           `json:"content" gorm:"type:json"`
	IsRead    bool             `json:"is_read" gorm:"default:false"`
	CreatedAt time.Time        `json:"created_at"`
}
