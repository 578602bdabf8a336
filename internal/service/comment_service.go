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

// CommentService manages comments under the same visibility rules as their
// parent posts.
type CommentService interface {
	Create(ctx context.Context, actor *auth.Identity, postID, parentCommentID, content string) (*model.Comment, error)
	ListByPost(ctx context.Context, actor *auth.Identity, postID string, skip, limit int) ([]model.Comment, error)
	Delete(ctx context.Context, actor *auth.Identity, commentID string) error
}

type commentService struct {
	comments      repository.CommentRepository
	posts         repository.PostRepository
	users         UserService
	notifications NotificationService
}

// NewCommentService creates a new comment service.
func NewCommentService(
	comments repository.CommentRepository,
	posts repository.PostRepository,
	users UserService,
	notifications NotificationService,
) CommentService {
	return &commentService{
		comments:      comments,
		posts:         posts,
		users:         users,
		notifications: notifications,
	}
}

// Create adds a comment to a post the actor can view. Replies must reference
// a parent on the same post. The post author is notified.
func (s *commentService) Create(ctx context.Context, actor *auth.Identity, postID, parentCommentID, content string) (*model.Comment, error) {
	post, err := s.visiblePost(ctx, actor, postID)
	if err != nil {
		return nil, err
	}

	if parentCommentID != "" {
		parent, err := s.comments.FindByID(ctx, parentCommentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrCommentNotFound
			}
			return nil, fmt.Errorf("lookup parent comment: %w", err)
		}
		if parent.PostID != postID {
			return nil, apperrors.ErrCommentNotFound
		}
	}

	comment := &model.Comment{
		ID:              uuid.New().String(),
		Content:         content,
		AuthorID:        actor.ID,
		PostID:          postID,
		ParentCommentID: parentCommentID,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	if post.AuthorID != actor.ID {
		err := s.notifications.Notify(ctx, post.AuthorID, model.NotificationComment, map[string]interface{}{
			"post_id":    postID,
			"comment_id": comment.ID,
			"actor_id":   actor.ID,
			"actor_name": actor.FullName,
		})
		if err != nil {
			log.Printf("notify comment on post %s: %v", postID, err)
		}
	}

	return comment, nil
}

// ListByPost returns a post's comments, oldest first. The post must be
// visible to the actor.
func (s *commentService) ListByPost(ctx context.Context, actor *auth.Identity, postID string, skip, limit int) ([]model.Comment, error) {
	if _, err := s.visiblePost(ctx, actor, postID); err != nil {
		return nil, err
	}
	return s.comments.ListByPost(ctx, postID, skip, limit)
}

// Delete removes a comment when the actor owns it, is an admin, or
// administers the institution the parent post is scoped to.
func (s *commentService) Delete(ctx context.Context, actor *auth.Identity, commentID string) error {
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCommentNotFound
		}
		return fmt.Errorf("lookup comment: %w", err)
	}

	post, err := s.posts.FindByID(ctx, comment.PostID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup post: %w", err)
	}

	aff, err := s.users.Affiliation(ctx, actor.ID)
	if err != nil {
		return err
	}

	target := policy.Content{OwnerID: comment.AuthorID}
	if post != nil {
		target.SchoolScope = post.SchoolScope
	}
	if !policy.CanMutate(actor, aff, target) {
		return apperrors.ErrForbidden
	}

	return s.comments.Delete(ctx, commentID)
}

func (s *commentService) visiblePost(ctx context.Context, actor *auth.Identity, postID string) (*model.Post, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("lookup post: %w", err)
	}

	var aff policy.Affiliation
	if actor != nil {
		if aff, err = s.users.Affiliation(ctx, actor.ID); err != nil {
			return nil, err
		}
	}
	if !policy.CanView(actor, aff, contentOf(post)) {
		return nil, apperrors.ErrPostNotFound
	}
	return post, nil
}
