package repository

import (
	"context"

	"gorm.io/gorm"

	"lagtalk/internal/model"
)

// LikeRepository persists likes on posts and comments.
type LikeRepository interface {
	Create(ctx context.Context, like *model.Like) error
	FindByUserAndPost(ctx context.Context, userID, postID string) (*model.Like, error)
	FindByUserAndComment(ctx context.Context, userID, commentID string) (*model.Like, error)
	Delete(ctx context.Context, id string) error
	CountByPost(ctx context.Context, postID string) (int64, error)
	CountByComment(ctx context.Context, commentID string) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository builds a GORM-backed like repository.
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(ctx context.Context, like *model.Like) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *likeRepository) FindByUserAndPost(ctx context.Context, userID, postID string) (*model.Like, error) {
	var like model.Like
	if err := r.db.WithContext(ctx).Where("user_id = ? AND post_id = ?", userID, postID).First(&like).Error; err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *likeRepository) FindByUserAndComment(ctx context.Context, userID, commentID string) (*model.Like, error) {
	var like model.Like
	if err := r.db.WithContext(ctx).Where("user_id = ? AND comment_id = ?", userID, commentID).First(&like).Error; err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *likeRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Like{}, "id = ?", id).Error
}

func (r *likeRepository) CountByPost(ctx context.Context, postID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *likeRepository) CountByComment(ctx context.Context, commentID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Like{}).Where("comment_id = ?", commentID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
