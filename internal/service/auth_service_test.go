package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"lagtalk/internal/auth"
	apperrors "lagtalk/internal/errors"
	"lagtalk/internal/model"
)

type authServiceMocks struct {
	users               *MockUserRepository
	students            *MockStudentProfileRepository
	institutionProfiles *MockInstitutionProfileRepository
	institutions        *MockInstitutionRepository
	tokenStore          *MockTokenStore
	mailer              *MockMailer
	jwt                 *auth.JWTService
}

func newAuthServiceForTest() (AuthService, *authServiceMocks) {
	m := &authServiceMocks{
		users:               new(MockUserRepository),
		students:            new(MockStudentProfileRepository),
		institutionProfiles: new(MockInstitutionProfileRepository),
		institutions:        new(MockInstitutionRepository),
		tokenStore:          new(MockTokenStore),
		mailer:              new(MockMailer),
		jwt:                 auth.NewJWTService("test-secret", time.Hour),
	}
	svc := NewAuthService(m.users, m.students, m.institutionProfiles, m.institutions, m.jwt, m.tokenStore, m.mailer)
	return svc, m
}

func storedUser(role auth.Role, verified bool) *model.User {
	hash, _ := auth.HashPassword("password123")
	return &model.User{
		ID:             uuid.New().String(),
		Email:          "ada@unilag.edu.ng",
		Username:       "ada",
		FullName:       "Ada Obi",
		HashedPassword: hash,
		Role:           role,
		IsActive:       true,
		IsVerified:     verified,
	}
}

func TestAuthService_Register(t *testing.T) {
	t.Run("successful registration starts as general and unverified", func(t *testing.T) {
		svc, m := newAuthServiceForTest()
		m.users.On("FindByEmail", mock.Anything, "ada@unilag.edu.ng").Return(nil, gorm.ErrRecordNotFound)
		m.users.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
		m.mailer.On("SendVerificationEmail", mock.Anything, "ada@unilag.edu.ng", "Ada Obi", mock.Anything).Return(nil).Maybe()

		user, err := svc.Register(context.Background(), RegisterInput{
			Email:    "ada@unilag.edu.ng",
			Username: "ada",
			FullName: "Ada Obi",
			Password: "password123",
		})
		require.NoError(t, err)
		assert.Equal(t, auth.RoleGeneral, user.Role)
		assert.False(t, user.IsVerified)
		assert.NotEmpty(t, user.VerificationToken)
		assert.NotEqual(t, "password123", user.HashedPassword)

		m.users.AssertExpectations(t)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		svc, m := newAuthServiceForTest()
		m.users.On("FindByEmail", mock.Anything, "ada@unilag.edu.ng").Return(storedUser(auth.RoleGeneral, true), nil)

		_, err := svc.Register(context.Background(), RegisterInput{
			Email:    "ada@unilag.edu.ng",
			Password: "password123",
		})
		assert.ErrorIs(t, err, apperrors.ErrUserAlreadyExists)
	})

	t.Run("username defaults to the email local part", func(t *testing.T) {
		svc, m := newAuthServiceForTest()
		m.users.On("FindByEmail", mock.Anything, "ada@unilag.edu.ng").Return(nil, gorm.ErrRecordNotFound)
		m.users.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
		m.mailer.On("SendVerificationEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

		user, err := svc.Register(context.Background(), RegisterInput{
			Email:    "ada@unilag.edu.ng",
			Password: "password123",
		})
		require.NoError(t, err)
		assert.Equal(t, "ada", user.Username)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Run("successful login issues token carrying the role claim", func(t *testing.T) {
		svc, m := newAuthServiceForTest()
		user := storedUser(auth.RoleGeneral, true)
		m.users.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)

		token, loggedIn, err := svc.Login(context.Background(), user.Email, "password123")
		require.NoError(t, err)
		assert.Equal(t, user.ID, loggedIn.ID)

		claims, err := m.jwt.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, user.Email, claims.Subject)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, string(auth.RoleGeneral), claims.Role)
		assert.True(t, claims.IsVerified)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, m := newAuthServiceForTest()
		user := storedUser(auth.RoleGeneral, true)
		m.users.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)

		_, _, err := svc.Login(context.Background(), user.Email, "wrong")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, m := newAuthServiceForTest()
		m.users.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

		_, _, err := svc.Login(context.Background(), "ghost@example.com", "password123")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("deactivated account", func(t *testing.T) {
		svc, m := newAuthServiceForTest()
		user := storedUser(auth.RoleGeneral, true)
		user.IsActive = false
		m.users.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)

		_, _, err := svc.Login(context.Background(), user.Email, "password123")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestAuthService_VerifyEmail(t *testing.T) {
	t.Run("consumes the token once and issues a verified token", func(t *testing.T) {
		svc, m := newAuthServiceForTest()
		user := storedUser(auth.RoleGeneral, false)
		user.VerificationToken = "one-time-token"
		m.users.On("FindByVerificationToken", mock.Anything, "one-time-token").Return(user, nil)
		m.users.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		token, verified, err := svc.VerifyEmail(context.Background(), "one-time-token")
		require.NoError(t, err)
		assert.True(t, verified.IsVerified)
		assert.Empty(t, verified.VerificationToken, "token must be cleared after use")

		claims, err := m.jwt.ValidateToken(token)
		require.NoError(t, err)
		assert.True(t, claims.IsVerified)
	})

	t.Run("already verified", func(t *testing.T) {
		svc, m := newAuthServiceForTest()
		user := storedUser(auth.RoleGeneral, true)
		user.VerificationToken = "stale-token"
		m.users.On("FindByVerificationToken", mock.Anything, "stale-token").Return(user, nil)

		_, _, err := svc.VerifyEmail(context.Background(), "stale-token")
		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyVerified)
	})

	t.Run("unknown token", func(t *testing.T) {
		svc, m := newAuthServiceForTest()
		m.users.On("FindByVerificationToken", mock.Anything, "bogus").Return(nil, gorm.ErrRecordNotFound)

		_, _, err := svc.VerifyEmail(context.Background(), "bogus")
		assert.ErrorIs(t, err, apperrors.ErrVerificationToken)
	})
}

func TestAuthService_ForgotPassword(t *testing.T) {
	t.Run("unknown email is silently ignored", func(t *testing.T) {
		svc, m := newAuthServiceForTest()
		m.users.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

		err := svc.ForgotPassword(context.Background(), "ghost@example.com")
		assert.NoError(t, err)
	})

	t.Run("known email gets a fresh reset token", func(t *testing.T) {
		svc, m := newAuthServiceForTest()
		user := storedUser(auth.RoleGeneral, true)
		m.users.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
		m.users.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
		m.mailer.On("SendPasswordResetEmail", mock.Anything, user.Email, user.FullName, mock.Anything).Return(nil).Maybe()

		err := svc.ForgotPassword(context.Background(), user.Email)
		require.NoError(t, err)
		assert.NotEmpty(t, user.VerificationToken)
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	svc, m := newAuthServiceForTest()
	user := storedUser(auth.RoleGeneral, true)
	oldHash := user.HashedPassword
	user.VerificationToken = "reset-token"
	m.users.On("FindByVerificationToken", mock.Anything, "reset-token").Return(user, nil)
	m.users.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	err := svc.ResetPassword(context.Background(), "reset-token", "new-password-456")
	require.NoError(t, err)
	assert.NotEqual(t, oldHash, user.HashedPassword)
	assert.Empty(t, user.VerificationToken)
	assert.True(t, auth.VerifyPassword("new-password-456", user.HashedPassword))
}

func TestAuthService_Logout(t *testing.T) {
	svc, m := newAuthServiceForTest()
	m.tokenStore.On("RevokeToken", mock.Anything, "token-id", mock.AnythingOfType("time.Duration")).Return(nil)

	identity := &auth.Identity{
		ID:        uuid.New().String(),
		TokenID:   "token-id",
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}
	err := svc.Logout(context.Background(), identity)
	require.NoError(t, err)
	m.tokenStore.AssertExpectations(t)
}

func TestAuthService_CreateStudentProfile(t *testing.T) {
	institution := &model.Institution{ID: uuid.New().String(), Name: "University of Lagos"}

	t.Run("promotes a verified general user to student", func(t *testing.T) {
		svc, m := newAuthServiceForTest()
		user := storedUser(auth.RoleGeneral, true)
		identity := &auth.Identity{ID: user.ID, Email: user.Email, Role: auth.RoleGeneral, IsVerified: true}

		m.institutionProfiles.On("FindByUserID", mock.Anything, user.ID).Return(nil, gorm.ErrRecordNotFound)
		m.students.On("FindByUserID", mock.Anything, user.ID).Return(nil, gorm.ErrRecordNotFound)
		m.institutions.On("FindByID", mock.Anything, institution.ID).Return(institution, nil)
		m.students.On("Create", mock.Anything, mock.AnythingOfType("*model.StudentProfile")).Return(nil)
		m.users.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		m.users.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		profile, token, err := svc.CreateStudentProfile(context.Background(), identity, StudentProfileInput{
			InstitutionID: institution.ID,
			Faculty:       "Science",
		})
		require.NoError(t, err)
		assert.Equal(t, institution.ID, profile.InstitutionID)
		assert.Equal(t, "University of Lagos", profile.InstitutionName)

		claims, err := m.jwt.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, string(auth.RoleStudent), claims.Role, "fresh token must carry the new role")
	})

	t.Run("unverified user is rejected", func(t *testing.T) {
		svc, _ := newAuthServiceForTest()
		identity := &auth.Identity{ID: "u1", Role: auth.RoleGeneral, IsVerified: false}

		_, _, err := svc.CreateStudentProfile(context.Background(), identity, StudentProfileInput{})
		assert.ErrorIs(t, err, apperrors.ErrEmailNotVerified)
	})

	t.Run("existing institution profile blocks the transition", func(t *testing.T) {
		svc, m := newAuthServiceForTest()
		identity := &auth.Identity{ID: "u1", Role: auth.RoleGeneral, IsVerified: true}
		m.institutionProfiles.On("FindByUserID", mock.Anything, "u1").Return(&model.InstitutionProfile{UserID: "u1"}, nil)

		_, _, err := svc.CreateStudentProfile(context.Background(), identity, StudentProfileInput{})
		assert.ErrorIs(t, err, apperrors.ErrProfileConflict)
	})

	t.Run("duplicate student profile is rejected", func(t *testing.T) {
		svc, m := newAuthServiceForTest()
		identity := &auth.Identity{ID: "u1", Role: auth.RoleStudent, IsVerified: true}
		m.institutionProfiles.On("FindByUserID", mock.Anything, "u1").Return(nil, gorm.ErrRecordNotFound)
		m.students.On("FindByUserID", mock.Anything, "u1").Return(&model.StudentProfile{UserID: "u1"}, nil)

		_, _, err := svc.CreateStudentProfile(context.Background(), identity, StudentProfileInput{})
		assert.ErrorIs(t, err, apperrors.ErrProfileAlreadyExists)
	})
}

func TestAuthService_CreateInstitutionProfile(t *testing.T) {
	institution := &model.Institution{ID: uuid.New().String(), Name: "University of Lagos"}

	t.Run("promotes a verified general user to institution", func(t *testing.T) {
		svc, m := newAuthServiceForTest()
		user := storedUser(auth.RoleGeneral, true)
		identity := &auth.Identity{ID: user.ID, Email: user.Email, Role: auth.RoleGeneral, IsVerified: true}

		m.students.On("FindByUserID", mock.Anything, user.ID).Return(nil, gorm.ErrRecordNotFound)
		m.institutionProfiles.On("FindByUserID", mock.Anything, user.ID).Return(nil, gorm.ErrRecordNotFound)
		m.institutions.On("FindByID", mock.Anything, institution.ID).Return(institution, nil)
		m.institutionProfiles.On("Create", mock.Anything, mock.AnythingOfType("*model.InstitutionProfile")).Return(nil)
		m.users.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		m.users.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		profile, token, err := svc.CreateInstitutionProfile(context.Background(), identity, InstitutionProfileInput{
			InstitutionID: institution.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, institution.ID, profile.InstitutionID)
		assert.Equal(t, "University of Lagos", profile.Name, "name defaults to the institution's")
		assert.Equal(t, user.Email, profile.Email, "email defaults to the account's")

		claims, err := m.jwt.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, string(auth.RoleInstitution), claims.Role)
	})

	t.Run("student cannot become an institution", func(t *testing.T) {
		svc, _ := newAuthServiceForTest()
		identity := &auth.Identity{ID: "u1", Role: auth.RoleStudent, IsVerified: true}

		_, _, err := svc.CreateInstitutionProfile(context.Background(), identity, InstitutionProfileInput{InstitutionID: "i1"})
		assert.ErrorIs(t, err, apperrors.ErrProfileConflict)
	})

	t.Run("unknown institution", func(t *testing.T) {
		svc, m := newAuthServiceForTest()
		identity := &auth.Identity{ID: "u1", Role: auth.RoleGeneral, IsVerified: true}
		m.students.On("FindByUserID", mock.Anything, "u1").Return(nil, gorm.ErrRecordNotFound)
		m.institutionProfiles.On("FindByUserID", mock.Anything, "u1").Return(nil, gorm.ErrRecordNotFound)
		m.institutions.On("FindByID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

		_, _, err := svc.CreateInstitutionProfile(context.Background(), identity, InstitutionProfileInput{InstitutionID: "ghost"})
		assert.ErrorIs(t, err, apperrors.ErrInstitutionNotFound)
	})
}
