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

// CommunityService manages open interest groups. Unlike channels,
// communities have no private mode; anyone can join.
type CommunityService interface {
	Create(ctx context.Context, actor *auth.Identity, name, description string) (*model.Community, error)
	List(ctx context.Context, skip, limit int) ([]model.Community, error)
	GetByID(ctx context.Context, id string) (*model.Community, error)
	Join(ctx context.Context, actor *auth.Identity, communityID string) error
	Leave(ctx context.Context, actor *auth.Identity, communityID string) error
}

type communityService struct {
	communities repository.CommunityRepository
}

// NewCommunityService creates a new community service.
func NewCommunityService(communities repository.CommunityRepository) CommunityService {
	return &communityService{communities: communities}
}

func (s *communityService) Create(ctx context.Context, actor *auth.Identity, name, description string) (*model.Community, error) {
	if _, err := s.communities.FindByName(ctx, name); err == nil {
		return nil, apperrors.ErrNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup community name: %w", err)
	}

	community := &model.Community{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		CreatedBy:   actor.ID,
	}
	if err := s.communities.Create(ctx, community); err != nil {
		return nil, fmt.Errorf("create community: %w", err)
	}
	if err := s.communities.AddMember(ctx, &model.CommunityMember{UserID: actor.ID, CommunityID: community.ID}); err != nil {
		return nil, fmt.Errorf("enroll creator: %w", err)
	}
	return community, nil
}

func (s *communityService) List(ctx context.Context, skip, limit int) ([]model.Community, error) {
	return s.communities.List(ctx, skip, limit)
}

func (s *communityService) GetByID(ctx context.Context, id string) (*model.Community, error) {
	community, err := s.communities.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCommunityNotFound
		}
		return nil, fmt.Errorf("lookup community: %w", err)
	}
	return community, nil
}

func (s *communityService) Join(ctx context.Context, actor *auth.Identity, communityID string) error {
	if _, err := s.GetByID(ctx, communityID); err != nil {
		return err
	}
	if _, err := s.communities.FindMember(ctx, actor.ID, communityID); err == nil {
		return nil // already a member
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup membership: %w", err)
	}
	return s.communities.AddMember(ctx, &model.CommunityMember{UserID: actor.ID, CommunityID: communityID})
}

func (s *communityService) Leave(ctx context.Context, actor *auth.Identity, communityID string) error {
	if _, err := s.communities.FindMember(ctx, actor.ID, communityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotMember
		}
		return fmt.Errorf("lookup membership: %w", err)
	}
	return s.communities.RemoveMember(ctx, actor.ID, communityID)
}
