package repository

import (
	"context"

	"gorm.io/gorm"

	"lagtalk/internal/model"
)

// ResourceRepository persists student resources.
type ResourceRepository interface {
	Create(ctx context.Context, resource *model.StudentResource) error
	FindByID(ctx context.Context, id string) (*model.StudentResource, error)
	ListByInstitution(ctx context.Context, institutionID string, skip, limit int) ([]model.StudentResource, error)
	Delete(ctx context.Context, id string) error
}

type resourceRepository struct {
	db *gorm.DB
}

// NewResourceRepository builds a GORM-backed student resource repository.
func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &resourceRepository{db: db}
}

func (r *resourceRepository) Create(ctx context.Context, resource *model.StudentResource) error {
	return r.db.WithContext(ctx).Create(resource).Error
}

func (r *resourceRepository) FindByID(ctx context.Context, id string) (*model.StudentResource, error) {
	var resource model.StudentResource
	if err := r.db.WithContext(ctx).First(&resource, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &resource, nil
}

func (r *resourceRepository) ListByInstitution(ctx context.Context, institutionID string, skip, limit int) ([]model.StudentResource, error) {
	var resources []model.StudentResource
	err := r.db.WithContext(ctx).
		Where("institution_id = ?", institutionID).
		Order("created_at DESC").
		Offset(skip).Limit(limit).
		Find(&resources).Error
	if err != nil {
		return nil, err
	}
	return resources, nil
}

func (r *resourceRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.StudentResource{}, "id = ?", id).Error
}
