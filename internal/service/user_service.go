package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"lagtalk/internal/auth"
	apperrors "lagtalk/internal/errors"
	"lagtalk/internal/model"
	"lagtalk/internal/policy"
	"lagtalk/internal/repository"
)

// UpdateProfileInput carries the mutable profile fields. Nil pointers leave
// the current value untouched.
type UpdateProfileInput struct {
	FullName              *string
	Username              *string
	Bio                   *string
	ProfilePicture        *string
	IsOnboardingCompleted *bool
}

// UserService reads and updates user records and resolves institution
// affiliations for the visibility policy.
type UserService interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context, skip, limit int) ([]model.User, error)
	UpdateProfile(ctx context.Context, identity *auth.Identity, input UpdateProfileInput) (*model.User, string, error)
	Deactivate(ctx context.Context, id string) error
	Affiliation(ctx context.Context, userID string) (policy.Affiliation, error)
}

type userService struct {
	users               repository.UserRepository
	students            repository.StudentProfileRepository
	institutionProfiles repository.InstitutionProfileRepository
	jwtService          *auth.JWTService
}

// NewUserService creates a new user service.
func NewUserService(
	users repository.UserRepository,
	students repository.StudentProfileRepository,
	institutionProfiles repository.InstitutionProfileRepository,
	jwtService *auth.JWTService,
) UserService {
	return &userService{
		users:               users,
		students:            students,
		institutionProfiles: institutionProfiles,
		jwtService:          jwtService,
	}
}

func (s *userService) GetByID(ctx context.Context, id string) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	return user, nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	return user, nil
}

func (s *userService) List(ctx context.Context, skip, limit int) ([]model.User, error) {
	return s.users.List(ctx, skip, limit)
}

// UpdateProfile applies the requested changes and issues a fresh token since
// full name and onboarding status travel in the claims.
func (s *userService) UpdateProfile(ctx context.Context, identity *auth.Identity, input UpdateProfileInput) (*model.User, string, error) {
	user, err := s.GetByID(ctx, identity.ID)
	if err != nil {
		return nil, "", err
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.ProfilePicture != nil {
		user.ProfilePicture = *input.ProfilePicture
	}
	if input.IsOnboardingCompleted != nil {
		user.IsOnboardingCompleted = *input.IsOnboardingCompleted
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, "", fmt.Errorf("update user: %w", err)
	}

	token, err := s.jwtService.GenerateAccessToken(identityFor(user), 0)
	if err != nil {
		return nil, "", fmt.Errorf("generate access token: %w", err)
	}
	return user, token, nil
}

func (s *userService) Deactivate(ctx context.Context, id string) error {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	user.IsActive = false
	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("deactivate user: %w", err)
	}
	return nil
}

// Affiliation resolves the actor's institution link: an institution profile
// marks them an institution admin, a student profile a plain member. Users
// without either have no affiliation.
func (s *userService) Affiliation(ctx context.Context, userID string) (policy.Affiliation, error) {
	if userID == "" {
		return policy.Affiliation{}, nil
	}

	if profile, err := s.institutionProfiles.FindByUserID(ctx, userID); err == nil {
		return policy.Affiliation{InstitutionID: profile.InstitutionID, InstitutionAdmin: true}, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return policy.Affiliation{}, fmt.Errorf("lookup institution profile: %w", err)
	}

	if profile, err := s.students.FindByUserID(ctx, userID); err == nil {
		return policy.Affiliation{InstitutionID: profile.InstitutionID}, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return policy.Affiliation{}, fmt.Errorf("lookup student profile: %w", err)
	}

	return policy.Affiliation{}, nil
}
