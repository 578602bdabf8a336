package repository

import (
	"context"

	"gorm.io/gorm"

	"lagtalk/internal/model"
)

// PostFilter narrows post listings. Zero values mean no constraint.
type PostFilter struct {
	PostType    model.PostType
	SchoolScope string
	ChannelID   string
	CommunityID string
	Skip        int
	Limit       int
}

// PostRepository persists posts and attached media.
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	FindByID(ctx context.Context, id string) (*model.Post, error)
	List(ctx context.Context, filter PostFilter) ([]model.Post, error)
	Delete(ctx context.Context, id string) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository builds a GORM-backed post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) FindByID(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Media").
		First(&post, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, filter PostFilter) ([]model.Post, error) {
	q := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Media").
		Order("created_at DESC")

	if filter.PostType != "" {
		q = q.Where("post_type = ?", filter.PostType)
	}
	if filter.SchoolScope != "" {
		q = q.Where("school_scope = ?", filter.SchoolScope)
	}
	if filter.ChannelID != "" {
		q = q.Where("channel_id = ?", filter.ChannelID)
	}
	if filter.CommunityID != "" {
		q = q.Where("community_id = ?", filter.CommunityID)
	}
	if filter.Skip > 0 {
		q = q.Offset(filter.Skip)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var posts []model.Post
	if err := q.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Post{}, "id = ?", id).Error
}
