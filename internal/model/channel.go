package model

import "time"

// Channel is a named space users join to post and chat.
type Channel struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	Name        string    `json:"name" gorm:"size:255;index;not null"`
	Description string    `json:"description" gorm:"size:2048"`
	IsPrivate   bool      `json:"is_private" gorm:"default:false"`
	CreatedBy   string    `json:"created_by" gorm:"size:36;not null"`
	CreatedAt   time.Time `json:"created_at"`
}

// ChannelMember links a user to a channel with per-channel privileges.
type ChannelMember struct {
	UserID      string `json:"user_id" gorm:"primaryKey;size:36"`
	ChannelID   string `json:"channel_id" gorm:"primaryKey;size:36"`
	IsAdmin     bool   `json:"is_admin" gorm:"default:false"`
	IsModerator bool   `json:"is_moderator" gorm:"default:false"`
}

// Community is an open interest group.
type Community struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	Name        string    `json:"name" gorm:"uniqueIndex;size:255;not null"`
	Description string    `json:"description" gorm:"size:2048"`
	CreatedBy   string    `json:"created_by" gorm:"size:36;not null"`
	CreatedAt   time.Time `json:"created_at"`
}

// CommunityMember links a user to a community.
type CommunityMember struct {
	UserID      string `json:"user_id" gorm:"primaryKey;size:36"`
	CommunityID string `json:"community_id" gorm:"primaryKey;size:36"`
}
