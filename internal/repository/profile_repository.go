package repository

import (
	"context"

	"gorm.io/gorm"

	"lagtalk/internal/model"
)

// StudentProfileRepository persists student profiles.
type StudentProfileRepository interface {
	Create(ctx context.Context, profile *model.StudentProfile) error
	FindByUserID(ctx context.Context, userID string) (*model.StudentProfile, error)
}

type studentProfileRepository struct {
	db *gorm.DB
}

// NewStudentProfileRepository builds a GORM-backed student profile repository.
func NewStudentProfileRepository(db *gorm.DB) StudentProfileRepository {
	return &studentProfileRepository{db: db}
}

func (r *studentProfileRepository) Create(ctx context.Context, profile *model.StudentProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *studentProfileRepository) FindByUserID(ctx context.Context, userID string) (*model.StudentProfile, error) {
	var profile model.StudentProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// InstitutionProfileRepository persists institution admin profiles.
type InstitutionProfileRepository interface {
	Create(ctx context.Context, profile *model.InstitutionProfile) error
	FindByUserID(ctx context.Context, userID string) (*model.InstitutionProfile, error)
	FindByInstitutionID(ctx context.Context, institutionID string) (*model.InstitutionProfile, error)
}

type institutionProfileRepository struct {
	db *gorm.DB
}

// NewInstitutionProfileRepository builds a GORM-backed institution profile repository.
func NewInstitutionProfileRepository(db *gorm.DB) InstitutionProfileRepository {
	return &institutionProfileRepository{db: db}
}

func (r *institutionProfileRepository) Create(ctx context.Context, profile *model.InstitutionProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *institutionProfileRepository) FindByUserID(ctx context.Context, userID string) (*model.InstitutionProfile, error) {
	var profile model.InstitutionProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *institutionProfileRepository) FindByInstitutionID(ctx context.Context, institutionID string) (*model.InstitutionProfile, error) {
	var profile model.InstitutionProfile
	if err := r.db.WithContext(ctx).Where("institution_id = ?", institutionID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
