package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"lagtalk/internal/config"
	apperrors "lagtalk/internal/errors"
	"lagtalk/internal/middleware"
	"lagtalk/internal/service"
)

// AuthHandler handles authentication endpoints. Tokens travel both in the
// response body and in an HTTP-only cookie so browser and API clients work
// the same way.
type AuthHandler struct {
	authService service.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=64"`
	FullName string `json:"full_name" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordRequest carries the email to send a reset link to.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest carries a reset token and the replacement password.
type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// StudentProfileRequest represents a student profile creation request.
type StudentProfileRequest struct {
	InstitutionID    string `json:"institution_id" validate:"omitempty,uuid4"`
	InstitutionName  string `json:"institution_name"`
	ProfilePicture   string `json:"profile_picture"`
	Faculty          string `json:"faculty"`
	Department       string `json:"department"`
	MatricNumber     string `json:"matric_number"`
	EducationalLevel string `json:"educational_level"`
	Course           string `json:"course"`
	GraduationYear   int    `json:"graduation_year"`
}

// InstitutionProfileRequest represents an institution profile creation request.
type InstitutionProfileRequest struct {
	InstitutionID  string `json:"institution_id" validate:"required,uuid4"`
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	ProfilePicture string `json:"profile_picture"`
}

// AuthResponse represents an authentication response.
type AuthResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        interface{} `json:"user,omitempty"`
}

func (h *AuthHandler) setAuthCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   h.cfg.CookieMaxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

func (h *AuthHandler) clearAuthCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), service.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "user registered successfully, please verify your email",
		"user":    user,
	})
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	h.setAuthCookie(c, token)
	return c.JSON(http.StatusOK, AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	})
}

// VerifyEmail godoc
// @Summary Verify email with the token from the verification link
// @Tags auth
// @Produce json
// @Param token query string true "Verification token"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /auth/verify-email [get]
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return apperrors.ErrVerificationToken
	}

	accessToken, user, err := h.authService.VerifyEmail(c.Request().Context(), token)
	if err != nil {
		return err
	}

	h.setAuthCookie(c, accessToken)
	return c.JSON(http.StatusOK, AuthResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User:        user,
	})
}

// ForgotPassword godoc
// @Summary Request a password reset email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ForgotPasswordRequest true "Account email"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return err
	}

	// Same response for known and unknown emails.
	return c.JSON(http.StatusOK, map[string]string{
		"message": "if the email exists, a reset link has been sent",
	})
}

// ResetPassword godoc
// @Summary Reset password with a reset token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "Reset token and new password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ResetPassword(c.Request().Context(), req.Token, req.NewPassword); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "password reset successfully",
	})
}

// Logout godoc
// @Summary Logout and revoke the current token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return apperrors.ErrUnauthenticated
	}

	if err := h.authService.Logout(c.Request().Context(), identity); err != nil {
		return err
	}

	h.clearAuthCookie(c)
	return c.JSON(http.StatusOK, map[string]string{
		"message": "logged out successfully",
	})
}

// Me godoc
// @Summary Return the identity carried by the presented token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} auth.Identity
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return apperrors.ErrUnauthenticated
	}
	return c.JSON(http.StatusOK, identity)
}

// CreateStudentProfile godoc
// @Summary Create a student profile and promote the account to student
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body StudentProfileRequest true "Student profile data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /auth/student-profile [post]
func (h *AuthHandler) CreateStudentProfile(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return apperrors.ErrUnauthenticated
	}

	var req StudentProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, token, err := h.authService.CreateStudentProfile(c.Request().Context(), identity, service.StudentProfileInput{
		InstitutionID:    req.InstitutionID,
		InstitutionName:  req.InstitutionName,
		ProfilePicture:   req.ProfilePicture,
		Faculty:          req.Faculty,
		Department:       req.Department,
		MatricNumber:     req.MatricNumber,
		EducationalLevel: req.EducationalLevel,
		Course:           req.Course,
		GraduationYear:   req.GraduationYear,
	})
	if err != nil {
		return err
	}

	h.setAuthCookie(c, token)
	return c.JSON(http.StatusCreated, AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        profile,
	})
}

// CreateInstitutionProfile godoc
// @Summary Create an institution profile and promote the account
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body InstitutionProfileRequest true "Institution profile data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /auth/institution-profile [post]
func (h *AuthHandler) CreateInstitutionProfile(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return apperrors.ErrUnauthenticated
	}

	var req InstitutionProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, token, err := h.authService.CreateInstitutionProfile(c.Request().Context(), identity, service.InstitutionProfileInput{
		InstitutionID:  req.InstitutionID,
		Name:           req.Name,
		Email:          req.Email,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		return err
	}

	h.setAuthCookie(c, token)
	return c.JSON(http.StatusCreated, AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        profile,
	})
}
