package repository

import (
	"context"

	"gorm.io/gorm"

	"lagtalk/internal/model"
)

// ChannelRepository persists channels and their memberships.
type ChannelRepository interface {
	Create(ctx context.Context, channel *model.Channel) error
	FindByID(ctx context.Context, id string) (*model.Channel, error)
	List(ctx context.Context, skip, limit int) ([]model.Channel, error)
	AddMember(ctx context.Context, member *model.ChannelMember) error
	RemoveMember(ctx context.Context, userID, channelID string) error
	FindMember(ctx context.Context, userID, channelID string) (*model.ChannelMember, error)
	ListMembers(ctx context.Context, channelID string) ([]model.ChannelMember, error)
}

type channelRepository struct {
	db *gorm.DB
}

// NewChannelRepository builds a GORM-backed channel repository.
func NewChannelRepository(db *gorm.DB) ChannelRepository {
	return &channelRepository{db: db}
}

func (r *channelRepository) Create(ctx context.Context, channel *model.Channel) error {
	return r.db.WithContext(ctx).Create(channel).Error
}

func (r *channelRepository) FindByID(ctx context.Context, id string) (*model.Channel, error) {
	var channel model.Channel
	if err := r.db.WithContext(ctx).First(&channel, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &channel, nil
}

func (r *channelRepository) List(ctx context.Context, skip, limit int) ([]model.Channel, error) {
	var channels []model.Channel
	if err := r.db.WithContext(ctx).Offset(skip).Limit(limit).Order("created_at DESC").Find(&channels).Error; err != nil {
		return nil, err
	}
	return channels, nil
}

func (r *channelRepository) AddMember(ctx context.Context, member *model.ChannelMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *channelRepository) RemoveMember(ctx context.Context, userID, channelID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND channel_id = ?", userID, channelID).
		Delete(&model.ChannelMember{}).Error
}

func (r *channelRepository) FindMember(ctx context.Context, userID, channelID string) (*model.ChannelMember, error) {
	var member model.ChannelMember
	if err := r.db.WithContext(ctx).Where("user_id = ? AND channel_id = ?", userID, channelID).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *channelRepository) ListMembers(ctx context.Context, channelID string) ([]model.ChannelMember, error) {
	var members []model.ChannelMember
	if err := r.db.WithContext(ctx).Where("channel_id = ?", channelID).Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}
