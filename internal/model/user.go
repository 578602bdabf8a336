package model

import (
	"time"

	"lagtalk/internal/auth"
)

// User represents a registered account. The password hash and the one-time
// verification token are never exposed in JSON.
type User struct {
	ID             string    `json:"id" gorm:"primaryKey;size:36"`
	Email          string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Username       string    `json:"username" gorm:"uniqueIndex;size:255"`
	FullName       string    `json:"full_name" gorm:"size:255"`
	Bio            string    `json:"bio,omitempty" gorm:"size:1024"`
	ProfilePicture string    `json:"profile_picture,omitempty" gorm:"size:512"`
	HashedPassword string    `json:"-" gorm:"size:255;not null"`
	Role           auth.Role `json:"role" gorm:"size:50;default:'general'"`
	IsActive       bool      `json:"is_active" gorm:"default:true"`
	IsVerified     bool      `json:"is_verified" gorm:"default:false"`

	// VerificationToken is consumed exactly once for email verification or
	// password reset, then cleared.
	VerificationToken string `json:"-" gorm:"size:36"`

	IsOnboardingCompleted bool      `json:"is_onboarding_completed" gorm:"default:false"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}
