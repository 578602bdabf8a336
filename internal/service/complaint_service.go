package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lagtalk/internal/auth"
	apperrors "lagtalk/internal/errors"
	"lagtalk/internal/model"
	"lagtalk/internal/repository"
)

// FileComplaintInput targets exactly one of post, comment or user.
type FileComplaintInput struct {
	PostID    string `json:"post_id" validate:"omitempty,uuid4"`
	CommentID string `json:"comment_id" validate:"omitempty,uuid4"`
	UserID    string `json:"user_id" validate:"omitempty,uuid4"`
	Reason    string `json:"reason" validate:"required,max=2048"`
}

// ComplaintService handles moderation reports. Listing and resolving are
// admin operations, enforced at the route layer.
type ComplaintService interface {
	File(ctx context.Context, actor *auth.Identity, input FileComplaintInput) (*model.Complaint, error)
	List(ctx context.Context, unresolvedOnly bool, skip, limit int) ([]model.Complaint, error)
	Resolve(ctx context.Context, id string) (*model.Complaint, error)
}

type complaintService struct {
	complaints repository.ComplaintRepository
	posts      repository.PostRepository
	comments   repository.CommentRepository
	users      repository.UserRepository
}

// NewComplaintService creates a new complaint service.
func NewComplaintService(
	complaints repository.ComplaintRepository,
	posts repository.PostRepository,
	comments repository.CommentRepository,
	users repository.UserRepository,
) ComplaintService {
	return &complaintService{
		complaints: complaints,
		posts:      posts,
		comments:   comments,
		users:      users,
	}
}

// File records a complaint after checking the reported entity exists.
func (s *complaintService) File(ctx context.Context, actor *auth.Identity, input FileComplaintInput) (*model.Complaint, error) {
	switch {
	case input.PostID != "":
		if _, err := s.posts.FindByID(ctx, input.PostID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrPostNotFound
			}
			return nil, fmt.Errorf("lookup reported post: %w", err)
		}
	case input.CommentID != "":
		if _, err := s.comments.FindByID(ctx, input.CommentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrCommentNotFound
			}
			return nil, fmt.Errorf("lookup reported comment: %w", err)
		}
	case input.UserID != "":
		if _, err := s.users.FindByID(ctx, input.UserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrUserNotFound
			}
			return nil, fmt.Errorf("lookup reported user: %w", err)
		}
	default:
		return nil, apperrors.ErrComplaintTarget
	}

	complaint := &model.Complaint{
		ID:                uuid.New().String(),
		ReporterID:        actor.ID,
		ReportedPostID:    input.PostID,
		ReportedCommentID: input.CommentID,
		ReportedUserID:    input.UserID,
		Reason:            input.Reason,
	}
	if err := s.complaints.Create(ctx, complaint); err != nil {
		return nil, fmt.Errorf("create complaint: %w", err)
	}
	return complaint, nil
}

func (s *complaintService) List(ctx context.Context, unresolvedOnly bool, skip, limit int) ([]model.Complaint, error) {
	return s.complaints.List(ctx, unresolvedOnly, skip, limit)
}

// Resolve marks a complaint handled. Resolving twice is a no-op.
func (s *complaintService) Resolve(ctx context.Context, id string) (*model.Complaint, error) {
	complaint, err := s.complaints.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("lookup complaint: %w", err)
	}
	if complaint.IsResolved {
		return complaint, nil
	}
	complaint.IsResolved = true
	if err := s.complaints.Update(ctx, complaint); err != nil {
		return nil, fmt.Errorf("update complaint: %w", err)
	}
	return complaint, nil
}
