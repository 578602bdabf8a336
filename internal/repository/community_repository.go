package repository

import (
	"context"

	"gorm.io/gorm"

	"lagtalk/internal/model"
)

// CommunityRepository persists communities and their memberships.
type CommunityRepository interface {
	Create(ctx context.Context, community *model.Community) error
	FindByID(ctx context.Context, id string) (*model.Community, error)
	FindByName(ctx context.Context, name string) (*model.Community, error)
	List(ctx context.Context, skip, limit int) ([]model.Community, error)
	AddMember(ctx context.Context, member *model.CommunityMember) error
	RemoveMember(ctx context.Context, userID, communityID string) error
	FindMember(ctx context.Context, userID, communityID string) (*model.CommunityMember, error)
}

type communityRepository struct {
	db *gorm.DB
}

// NewCommunityRepository builds a GORM-backed community repository.
func NewCommunityRepository(db *gorm.DB) CommunityRepository {
	return &communityRepository{db: db}
}

func (r *communityRepository) Create(ctx context.Context, community *model.Community) error {
	return r.db.WithContext(ctx).Create(community).Error
}

func (r *communityRepository) FindByID(ctx context.Context, id string) (*model.Community, error) {
	var community model.Community
	if err := r.db.WithContext(ctx).First(&community, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &community, nil
}

func (r *communityRepository) FindByName(ctx context.Context, name string) (*model.Community, error) {
	var community model.Community
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&community).Error; err != nil {
		return nil, err
	}
	return &community, nil
}

func (r *communityRepository) List(ctx context.Context, skip, limit int) ([]model.Community, error) {
	var communities []model.Community
	if err := r.db.WithContext(ctx).Offset(skip).Limit(limit).Order("created_at DESC").Find(&communities).Error; err != nil {
		return nil, err
	}
	return communities, nil
}

func (r *communityRepository) AddMember(ctx context.Context, member *model.CommunityMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *communityRepository) RemoveMember(ctx context.Context, userID, communityID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND community_id = ?", userID, communityID).
		Delete(&model.CommunityMember{}).Error
}

func (r *communityRepository) FindMember(ctx context.Context, userID, communityID string) (*model.CommunityMember, error) {
	var member model.CommunityMember
	if err := r.db.WithContext(ctx).Where("user_id = ? AND community_id = ?", userID, communityID).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}
