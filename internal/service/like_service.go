package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lagtalk/internal/auth"
	apperrors "lagtalk/internal/errors"
	"lagtalk/internal/model"
	"lagtalk/internal/policy"
	"lagtalk/internal/repository"
)

// LikeService manages likes on posts and comments.
type LikeService interface {
	LikePost(ctx context.Context, actor *auth.Identity, postID string) error
	UnlikePost(ctx context.Context, actor *auth.Identity, postID string) error
	LikeComment(ctx context.Context, actor *auth.Identity, commentID string) error
	UnlikeComment(ctx context.Context, actor *auth.Identity, commentID string) error
	PostLikeCount(ctx context.Context, postID string) (int64, error)
	CommentLikeCount(ctx context.Context, commentID string) (int64, error)
}

type likeService struct {
	likes         repository.LikeRepository
	posts         repository.PostRepository
	comments      repository.CommentRepository
	users         UserService
	notifications NotificationService
}

// NewLikeService creates a new like service.
func NewLikeService(
	likes repository.LikeRepository,
	posts repository.PostRepository,
	comments repository.CommentRepository,
	users UserService,
	notifications NotificationService,
) LikeService {
	return &likeService{
		likes:         likes,
		posts:         posts,
		comments:      comments,
		users:         users,
		notifications: notifications,
	}
}

// LikePost records a like on a visible post and notifies its author.
func (s *likeService) LikePost(ctx context.Context, actor *auth.Identity, postID string) error {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPostNotFound
		}
		return fmt.Errorf("lookup post: %w", err)
	}

	aff, err := s.users.Affiliation(ctx, actor.ID)
	if err != nil {
		return err
	}
	if !policy.CanView(actor, aff, contentOf(post)) {
		return apperrors.ErrPostNotFound
	}

	if _, err := s.likes.FindByUserAndPost(ctx, actor.ID, postID); err == nil {
		return apperrors.ErrAlreadyLiked
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup like: %w", err)
	}

	like := &model.Like{
		ID:     uuid.New().String(),
		UserID: actor.ID,
		PostID: postID,
	}
	if err := s.likes.Create(ctx, like); err != nil {
		return fmt.Errorf("create like: %w", err)
	}

	if post.AuthorID != actor.ID {
		err := s.notifications.Notify(ctx, post.AuthorID, model.NotificationLike, map[string]interface{}{
			"post_id":    postID,
			"actor_id":   actor.ID,
			"actor_name": actor.FullName,
		})
		if err != nil {
			log.Printf("notify like on post %s: %v", postID, err)
		}
	}
	return nil
}

// UnlikePost removes the actor's like from a post.
func (s *likeService) UnlikePost(ctx context.Context, actor *auth.Identity, postID string) error {
	like, err := s.likes.FindByUserAndPost(ctx, actor.ID, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLikeNotFound
		}
		return fmt.Errorf("lookup like: %w", err)
	}
	return s.likes.Delete(ctx, like.ID)
}

// LikeComment records a like on a comment.
func (s *likeService) LikeComment(ctx context.Context, actor *auth.Identity, commentID string) error {
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCommentNotFound
		}
		return fmt.Errorf("lookup comment: %w", err)
	}

	if _, err := s.likes.FindByUserAndComment(ctx, actor.ID, commentID); err == nil {
		return apperrors.ErrAlreadyLiked
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup like: %w", err)
	}

	like := &model.Like{
		ID:        uuid.New().String(),
		UserID:    actor.ID,
		CommentID: commentID,
	}
	if err := s.likes.Create(ctx, like); err != nil {
		return fmt.Errorf("create like: %w", err)
	}

	if comment.AuthorID != actor.ID {
		err := s.notifications.Notify(ctx, comment.AuthorID, model.NotificationLike, map[string]interface{}{
			"comment_id": commentID,
			"actor_id":   actor.ID,
			"actor_name": actor.FullName,
		})
		if err != nil {
			log.Printf("notify like on comment %s: %v", commentID, err)
		}
	}
	return nil
}

// UnlikeComment removes the actor's like from a comment.
func (s *likeService) UnlikeComment(ctx context.Context, actor *auth.Identity, commentID string) error {
	like, err := s.likes.FindByUserAndComment(ctx, actor.ID, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLikeNotFound
		}
		return fmt.Errorf("lookup like: %w", err)
	}
	return s.likes.Delete(ctx, like.ID)
}

func (s *likeService) PostLikeCount(ctx context.Context, postID string) (int64, error) {
	return s.likes.CountByPost(ctx, postID)
}

func (s *likeService) CommentLikeCount(ctx context.Context, commentID string) (int64, error) {
	return s.likes.CountByComment(ctx, commentID)
}
