package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "lagtalk/internal/errors"
	"lagtalk/internal/model"
	"lagtalk/internal/repository"
)

// CreateInstitutionInput carries the fields for registering a school.
type CreateInstitutionInput struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"omitempty,email"`
	Description    string `json:"description"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	ProfilePicture string `json:"profile_picture"`
}

// InstitutionService manages the school directory.
type InstitutionService interface {
	Create(ctx context.Context, input CreateInstitutionInput) (*model.Institution, error)
	List(ctx context.Context, skip, limit int) ([]model.Institution, error)
	GetByID(ctx context.Context, id string) (*model.Institution, error)
}

type institutionService struct {
	institutions repository.InstitutionRepository
}

// NewInstitutionService creates a new institution service.
func NewInstitutionService(institutions repository.InstitutionRepository) InstitutionService {
	return &institutionService{institutions: institutions}
}

func (s *institutionService) Create(ctx context.Context, input CreateInstitutionInput) (*model.Institution, error) {
	if _, err := s.institutions.FindByName(ctx, input.Name); err == nil {
		return nil, apperrors.ErrNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup institution name: %w", err)
	}

	institution := &model.Institution{
		ID:             uuid.New().String(),
		Name:           input.Name,
		Email:          input.Email,
		Description:    input.Description,
		Website:        input.Website,
		Location:       input.Location,
		ProfilePicture: input.ProfilePicture,
	}
	if err := s.institutions.Create(ctx, institution); err != nil {
		return nil, fmt.Errorf("create institution: %w", err)
	}
	return institution, nil
}

func (s *institutionService) List(ctx context.Context, skip, limit int) ([]model.Institution, error) {
	return s.institutions.List(ctx, skip, limit)
}

func (s *institutionService) GetByID(ctx context.Context, id string) (*model.Institution, error) {
	institution, err := s.institutions.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInstitutionNotFound
		}
		return nil, fmt.Errorf("lookup institution: %w", err)
	}
	return institution, nil
}
