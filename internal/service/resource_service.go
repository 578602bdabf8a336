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
	"lagtalk/internal/policy"
	"lagtalk/internal/repository"
)

// CreateResourceInput carries the fields for publishing a student resource.
type CreateResourceInput struct {
	InstitutionID string
	Title         string
	Description   string
	URL           string
	ResourceType  string
}

// ResourceService manages the study materials institutions publish for their
// students. Deletion follows the content mutation policy: the publisher, a
// platform admin, or an admin of the owning institution.
type ResourceService interface {
	Create(ctx context.Context, actor *auth.Identity, input CreateResourceInput) (*model.StudentResource, error)
	ListByInstitution(ctx context.Context, institutionID string, skip, limit int) ([]model.StudentResource, error)
	Delete(ctx context.Context, actor *auth.Identity, id string) error
}

type resourceService struct {
	resources    repository.ResourceRepository
	institutions repository.InstitutionRepository
	users        UserService
}

// NewResourceService creates a new resource service.
func NewResourceService(
	resources repository.ResourceRepository,
	institutions repository.InstitutionRepository,
	users UserService,
) ResourceService {
	return &resourceService{
		resources:    resources,
		institutions: institutions,
		users:        users,
	}
}

func (s *resourceService) Create(ctx context.Context, actor *auth.Identity, input CreateResourceInput) (*model.StudentResource, error) {
	if _, err := s.institutions.FindByID(ctx, input.InstitutionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInstitutionNotFound
		}
		return nil, fmt.Errorf("lookup institution: %w", err)
	}

	resource := &model.StudentResource{
		ID:            uuid.New().String(),
		InstitutionID: input.InstitutionID,
		Title:         input.Title,
		Description:   input.Description,
		URL:           input.URL,
		ResourceType:  input.ResourceType,
		CreatedBy:     actor.ID,
	}
	if err := s.resources.Create(ctx, resource); err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}
	return resource, nil
}

func (s *resourceService) ListByInstitution(ctx context.Context, institutionID string, skip, limit int) ([]model.StudentResource, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	return s.resources.ListByInstitution(ctx, institutionID, skip, limit)
}

func (s *resourceService) Delete(ctx context.Context, actor *auth.Identity, id string) error {
	resource, err := s.resources.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrResourceNotFound
		}
		return fmt.Errorf("lookup resource: %w", err)
	}

	aff, err := s.users.Affiliation(ctx, actor.ID)
	if err != nil {
		return err
	}
	content := policy.Content{OwnerID: resource.CreatedBy, SchoolScope: resource.InstitutionID}
	if !policy.CanMutate(actor, aff, content) {
		return apperrors.ErrForbidden
	}

	if err := s.resources.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete resource: %w", err)
	}
	return nil
}
