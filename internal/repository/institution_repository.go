package repository

import (
	"context"

	"gorm.io/gorm"

	"lagtalk/internal/model"
)

// InstitutionRepository persists institutions.
type InstitutionRepository interface {
	Create(ctx context.Context, institution *model.Institution) error
	FindByID(ctx context.Context, id string) (*model.Institution, error)
	FindByName(ctx context.Context, name string) (*model.Institution, error)
	List(ctx context.Context, skip, limit int) ([]model.Institution, error)
}

type institutionRepository struct {
	db *gorm.DB
}

// NewInstitutionRepository builds a GORM-backed institution repository.
func NewInstitutionRepository(db *gorm.DB) InstitutionRepository {
	return &institutionRepository{db: db}
}

func (r *institutionRepository) Create(ctx context.Context, institution *model.Institution) error {
	return r.db.WithContext(ctx).Create(institution).Error
}

func (r *institutionRepository) FindByID(ctx context.Context, id string) (*model.Institution, error) {
	var institution model.Institution
	if err := r.db.WithContext(ctx).First(&institution, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &institution, nil
}

func (r *institutionRepository) FindByName(ctx context.Context, name string) (*model.Institution, error) {
	var institution model.Institution
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&institution).Error; err != nil {
		return nil, err
	}
	return &institution, nil
}

func (r *institutionRepository) List(ctx context.Context, skip, limit int) ([]model.Institution, error) {
	var institutions []model.Institution
	if err := r.db.WithContext(ctx).Offset(skip).Limit(limit).Order("name ASC").Find(&institutions).Error; err != nil {
		return nil, err
	}
	return institutions, nil
}
