package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lagtalk/internal/auth"
	apperrors "lagtalk/internal/errors"
	"lagtalk/internal/mail"
	"lagtalk/internal/model"
	"lagtalk/internal/repository"
)

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Email    string
	Username string
	FullName string
	Password string
}

// StudentProfileInput carries the fields accepted when creating a student profile.
type StudentProfileInput struct {
	InstitutionID    string
	InstitutionName  string
	ProfilePicture   string
	Faculty          string
	Department       string
	MatricNumber     string
	EducationalLevel string
	Course           string
	GraduationYear   int
}

// InstitutionProfileInput carries the fields accepted when creating an institution profile.
type InstitutionProfileInput struct {
	InstitutionID  string
	Name           string
	Email          string
	ProfilePicture string
}

// AuthService handles registration, credentials, email verification and the
// guarded role transitions triggered by profile creation.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*model.User, error)
	Login(ctx context.Context, email, password string) (accessToken string, user *model.User, err error)
	VerifyEmail(ctx context.Context, token string) (accessToken string, user *model.User, err error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	Logout(ctx context.Context, identity *auth.Identity) error
	CreateStudentProfile(ctx context.Context, identity *auth.Identity, input StudentProfileInput) (*model.StudentProfile, string, error)
	CreateInstitutionProfile(ctx context.Context, identity *auth.Identity, input InstitutionProfileInput) (*model.InstitutionProfile, string, error)
}

type authService struct {
	users               repository.UserRepository
	students            repository.StudentProfileRepository
	institutionProfiles repository.InstitutionProfileRepository
	institutions        repository.InstitutionRepository
	jwtService          *auth.JWTService
	tokenStore          auth.TokenStoreInterface
	mailer              mail.Mailer
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	users repository.UserRepository,
	students repository.StudentProfileRepository,
	institutionProfiles repository.InstitutionProfileRepository,
	institutions repository.InstitutionRepository,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
	mailer mail.Mailer,
) AuthService {
	return &authService{
		users:               users,
		students:            students,
		institutionProfiles: institutionProfiles,
		institutions:        institutions,
		jwtService:          jwtService,
		tokenStore:          tokenStore,
		mailer:              mailer,
	}
}

// Register creates a new general user with a hashed password and mails a
// one-time verification token.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	existing, err := s.users.FindByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrUserAlreadyExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	username := input.Username
	if username == "" {
		username = strings.SplitN(input.Email, "@", 2)[0]
	}

	user := &model.User{
		ID:                uuid.New().String(),
		Email:             input.Email,
		Username:          username,
		FullName:          input.FullName,
		HashedPassword:    hashed,
		Role:              auth.RoleGeneral,
		IsActive:          true,
		VerificationToken: uuid.New().String(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	go func(email, name, token string) {
		if err := s.mailer.SendVerificationEmail(context.Background(), email, name, token); err != nil {
			log.Printf("send verification email to %s: %v", email, err)
		}
	}(user.Email, user.FullName, user.VerificationToken)

	return user, nil
}

// Login verifies credentials and issues an access token.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", nil, apperrors.ErrInvalidCredentials
	}
	if !auth.VerifyPassword(password, user.HashedPassword) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateAccessToken(identityFor(user), 0)
	if err != nil {
		return "", nil, fmt.Errorf("generate access token: %w", err)
	}
	return token, user, nil
}

// VerifyEmail consumes a verification token exactly once and issues a fresh
// access token carrying the updated is_verified claim.
func (s *authService) VerifyEmail(ctx context.Context, token string) (string, *model.User, error) {
	user, err := s.users.FindByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.ErrVerificationToken
		}
		return "", nil, fmt.Errorf("lookup verification token: %w", err)
	}
	if user.IsVerified {
		return "", nil, apperrors.ErrEmailAlreadyVerified
	}

	user.IsVerified = true
	user.VerificationToken = ""
	if err := s.users.Update(ctx, user); err != nil {
		return "", nil, fmt.Errorf("update user: %w", err)
	}

	accessToken, err := s.jwtService.GenerateAccessToken(identityFor(user), 0)
	if err != nil {
		return "", nil, fmt.Errorf("generate access token: %w", err)
	}
	return accessToken, user, nil
}

// ForgotPassword stores a fresh reset token and mails it. Unknown emails are
// ignored so the endpoint cannot be used to probe for accounts.
func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("lookup user: %w", err)
	}

	user.VerificationToken = uuid.New().String()
	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	go func(email, name, token string) {
		if err := s.mailer.SendPasswordResetEmail(context.Background(), email, name, token); err != nil {
			log.Printf("send password reset email to %s: %v", email, err)
		}
	}(user.Email, user.FullName, user.VerificationToken)

	return nil
}

// ResetPassword consumes a reset token and replaces the credential hash.
func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	user, err := s.users.FindByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrVerificationToken
		}
		return fmt.Errorf("lookup reset token: %w", err)
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user.HashedPassword = hashed
	user.VerificationToken = ""
	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Logout revokes the presented token for its remaining lifetime.
func (s *authService) Logout(ctx context.Context, identity *auth.Identity) error {
	if identity.TokenID == "" {
		return nil
	}
	return s.tokenStore.RevokeToken(ctx, identity.TokenID, time.Until(identity.ExpiresAt))
}

// CreateStudentProfile links a verified user to an institution as a student
// and promotes the role. The transition is rejected when an institution
// profile exists, and is idempotency-guarded against duplicates.
func (s *authService) CreateStudentProfile(ctx context.Context, identity *auth.Identity, input StudentProfileInput) (*model.StudentProfile, string, error) {
	if !identity.IsVerified {
		return nil, "", apperrors.ErrEmailNotVerified
	}
	if identity.Role == auth.RoleInstitution {
		return nil, "", apperrors.ErrProfileConflict
	}
	if _, err := s.institutionProfiles.FindByUserID(ctx, identity.ID); err == nil {
		return nil, "", apperrors.ErrProfileConflict
	}
	if _, err := s.students.FindByUserID(ctx, identity.ID); err == nil {
		return nil, "", apperrors.ErrProfileAlreadyExists
	}

	institutionName := input.InstitutionName
	if input.InstitutionID != "" {
		institution, err := s.institutions.FindByID(ctx, input.InstitutionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, "", apperrors.ErrInstitutionNotFound
			}
			return nil, "", fmt.Errorf("lookup institution: %w", err)
		}
		institutionName = institution.Name
	}

	profile := &model.StudentProfile{
		ID:               uuid.New().String(),
		UserID:           identity.ID,
		InstitutionID:    input.InstitutionID,
		InstitutionName:  institutionName,
		ProfilePicture:   input.ProfilePicture,
		Faculty:          input.Faculty,
		Department:       input.Department,
		MatricNumber:     input.MatricNumber,
		EducationalLevel: input.EducationalLevel,
		Course:           input.Course,
		GraduationYear:   input.GraduationYear,
	}
	if err := s.students.Create(ctx, profile); err != nil {
		return nil, "", fmt.Errorf("create student profile: %w", err)
	}

	token, err := s.promote(ctx, identity.ID, auth.RoleStudent)
	if err != nil {
		return nil, "", err
	}
	return profile, token, nil
}

// CreateInstitutionProfile links a verified user to the institution they
// administer and promotes the role. Mirror image of CreateStudentProfile.
func (s *authService) CreateInstitutionProfile(ctx context.Context, identity *auth.Identity, input InstitutionProfileInput) (*model.InstitutionProfile, string, error) {
	if !identity.IsVerified {
		return nil, "", apperrors.ErrEmailNotVerified
	}
	if identity.Role == auth.RoleStudent {
		return nil, "", apperrors.ErrProfileConflict
	}
	if _, err := s.students.FindByUserID(ctx, identity.ID); err == nil {
		return nil, "", apperrors.ErrProfileConflict
	}
	if _, err := s.institutionProfiles.FindByUserID(ctx, identity.ID); err == nil {
		return nil, "", apperrors.ErrProfileAlreadyExists
	}

	institution, err := s.institutions.FindByID(ctx, input.InstitutionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.ErrInstitutionNotFound
		}
		return nil, "", fmt.Errorf("lookup institution: %w", err)
	}

	email := input.Email
	if email == "" {
		email = identity.Email
	}
	name := input.Name
	if name == "" {
		name = institution.Name
	}

	profile := &model.InstitutionProfile{
		ID:             uuid.New().String(),
		UserID:         identity.ID,
		InstitutionID:  institution.ID,
		Name:           name,
		Email:          email,
		ProfilePicture: input.ProfilePicture,
	}
	if err := s.institutionProfiles.Create(ctx, profile); err != nil {
		return nil, "", fmt.Errorf("create institution profile: %w", err)
	}

	token, err := s.promote(ctx, identity.ID, auth.RoleInstitution)
	if err != nil {
		return nil, "", err
	}
	return profile, token, nil
}

// promote updates the stored role and issues a token carrying the new claim.
func (s *authService) promote(ctx context.Context, userID string, role auth.Role) (string, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("lookup user: %w", err)
	}
	user.Role = role
	if err := s.users.Update(ctx, user); err != nil {
		return "", fmt.Errorf("update role: %w", err)
	}

	token, err := s.jwtService.GenerateAccessToken(identityFor(user), 0)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return token, nil
}

// identityFor projects a stored user onto the claims an access token carries.
func identityFor(user *model.User) auth.Identity {
	return auth.Identity{
		ID:                    user.ID,
		Email:                 user.Email,
		FullName:              user.FullName,
		Role:                  user.Role,
		IsVerified:            user.IsVerified,
		IsOnboardingCompleted: user.IsOnboardingCompleted,
	}
}
