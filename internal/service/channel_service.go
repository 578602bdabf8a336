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
	"lagtalk/internal/repository"
)

// ChannelService manages channels and their memberships. Private channels
// are joined by invitation from a channel admin or moderator.
type ChannelService interface {
	Create(ctx context.Context, actor *auth.Identity, name, description string, isPrivate bool) (*model.Channel, error)
	List(ctx context.Context, skip, limit int) ([]model.Channel, error)
	GetByID(ctx context.Context, id string) (*model.Channel, error)
	Join(ctx context.Context, actor *auth.Identity, channelID string) error
	Leave(ctx context.Context, actor *auth.Identity, channelID string) error
	Invite(ctx context.Context, actor *auth.Identity, channelID, userID string) error
}

type channelService struct {
	channels      repository.ChannelRepository
	users         repository.UserRepository
	notifications NotificationService
}

// NewChannelService creates a new channel service.
func NewChannelService(
	channels repository.ChannelRepository,
	users repository.UserRepository,
	notifications NotificationService,
) ChannelService {
	return &channelService{
		channels:      channels,
		users:         users,
		notifications: notifications,
	}
}

// Create stores a channel and enrolls the creator as its admin.
func (s *channelService) Create(ctx context.Context, actor *auth.Identity, name, description string, isPrivate bool) (*model.Channel, error) {
	channel := &model.Channel{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		IsPrivate:   isPrivate,
		CreatedBy:   actor.ID,
	}
	if err := s.channels.Create(ctx, channel); err != nil {
		return nil, fmt.Errorf("create channel: %w", err)
	}

	member := &model.ChannelMember{
		UserID:    actor.ID,
		ChannelID: channel.ID,
		IsAdmin:   true,
	}
	if err := s.channels.AddMember(ctx, member); err != nil {
		return nil, fmt.Errorf("enroll creator: %w", err)
	}
	return channel, nil
}

func (s *channelService) List(ctx context.Context, skip, limit int) ([]model.Channel, error) {
	return s.channels.List(ctx, skip, limit)
}

func (s *channelService) GetByID(ctx context.Context, id string) (*model.Channel, error) {
	channel, err := s.channels.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChannelNotFound
		}
		return nil, fmt.Errorf("lookup channel: %w", err)
	}
	return channel, nil
}

// Join enrolls the actor in a public channel. Private channels require an
// invitation.
func (s *channelService) Join(ctx context.Context, actor *auth.Identity, channelID string) error {
	channel, err := s.GetByID(ctx, channelID)
	if err != nil {
		return err
	}
	if channel.IsPrivate {
		return apperrors.ErrForbidden
	}
	if _, err := s.channels.FindMember(ctx, actor.ID, channelID); err == nil {
		return nil // already a member
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup membership: %w", err)
	}
	return s.channels.AddMember(ctx, &model.ChannelMember{UserID: actor.ID, ChannelID: channelID})
}

// Leave removes the actor from a channel.
func (s *channelService) Leave(ctx context.Context, actor *auth.Identity, channelID string) error {
	if _, err := s.channels.FindMember(ctx, actor.ID, channelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotMember
		}
		return fmt.Errorf("lookup membership: %w", err)
	}
	return s.channels.RemoveMember(ctx, actor.ID, channelID)
}

// Invite adds a user to the channel on behalf of a channel admin or
// moderator and notifies the invitee.
func (s *channelService) Invite(ctx context.Context, actor *auth.Identity, channelID, userID string) error {
	channel, err := s.GetByID(ctx, channelID)
	if err != nil {
		return err
	}

	inviter, err := s.channels.FindMember(ctx, actor.ID, channelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotMember
		}
		return fmt.Errorf("lookup membership: %w", err)
	}
	if !inviter.IsAdmin && !inviter.IsModerator && actor.Role != auth.RoleAdmin {
		return apperrors.ErrForbidden
	}

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("lookup user: %w", err)
	}

	if _, err := s.channels.FindMember(ctx, userID, channelID); err == nil {
		return nil // already a member
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup membership: %w", err)
	}

	if err := s.channels.AddMember(ctx, &model.ChannelMember{UserID: userID, ChannelID: channelID}); err != nil {
		return fmt.Errorf("add member: %w", err)
	}

	err = s.notifications.Notify(ctx, userID, model.NotificationChannelInvite, map[string]interface{}{
		"channel_id":   channelID,
		"channel_name": channel.Name,
		"actor_id":     actor.ID,
		"actor_name":   actor.FullName,
	})
	if err != nil {
		log.Printf("notify channel invite %s: %v", channelID, err)
	}
	return nil
}
