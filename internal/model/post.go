package model

import "time"

// PostType distinguishes regular posts from reels.
type PostType string

const (
	PostTypePost PostType = "post"
	PostTypeReel PostType = "reel"
)

// PostPrivacy controls who may view a post.
type PostPrivacy string

const (
	PrivacyPublic PostPrivacy = "public"
	// PrivacySchoolOnly restricts the post to members of the institution
	// named by SchoolScope.
	PrivacySchoolOnly PostPrivacy = "school_only"
	// PrivacyFollowersOnly currently means owner-only: no follower graph
	// exists yet.
	PrivacyFollowersOnly PostPrivacy = "followers_only"
)

// Post is a feed item authored by a user, optionally scoped to a school,
// channel or community.
type Post struct {
	ID       string      `json:"id" gorm:"primaryKey;size:36"`
	AuthorID string      `json:"author_id" gorm:"size:36;index;not null"`
	Content  string      `json:"content" gorm:"type:text"`
	PostType PostType    `json:"post_type" gorm:"size:16;default:'post'"`
	Privacy  PostPrivacy `json:"privacy" gorm:"size:32;default:'public'"`

	// SchoolScope is the institution id restricting visibility when privacy
	// is school_only; empty otherwise.
	SchoolScope string `json:"school_scope,omitempty" gorm:"size:36;index"`

	ChannelID   string    `json:"channel_id,omitempty" gorm:"size:36;index"`
	CommunityID string    `json:"community_id,omitempty" gorm:"size:36;index"`
	CreatedAt   time.Time `json:"created_at"`

	Author *User   `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Media  []Media `json:"media,omitempty" gorm:"foreignKey:PostID"`
}

// MediaType classifies attached media.
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// Media is a file attached to a post. Upload mechanics live outside this
// service; only the resulting URL and metadata are stored.
type Media struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	PostID    string    `json:"post_id" gorm:"size:36;index;not null"`
	MediaType MediaType `json:"media_type" gorm:"size:16"`
	URL       string    `json:"url" gorm:"size:1024;not null"`
	Metadata  string    `json:"metadata,omitempty" gorm:"type:json"`
}
