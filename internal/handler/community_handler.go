package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "lagtalk/internal/errors"
	"lagtalk/internal/middleware"
	"lagtalk/internal/service"
)

// CommunityHandler handles community endpoints.
type CommunityHandler struct {
	communityService service.CommunityService
}

// NewCommunityHandler creates a new community handler.
func NewCommunityHandler(communityService service.CommunityService) *CommunityHandler {
	return &CommunityHandler{communityService: communityService}
}

// CreateCommunityRequest represents a community creation request.
type CreateCommunityRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"omitempty,max=2048"`
}

// CreateCommunity godoc
// @Summary Create a community
// @Tags communities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateCommunityRequest true "Community data"
// @Success 201 {object} model.Community
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /communities [post]
func (h *CommunityHandler) CreateCommunity(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return apperrors.ErrUnauthenticated
	}

	var req CreateCommunityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	community, err := h.communityService.Create(c.Request().Context(), identity, req.Name, req.Description)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, community)
}

// ListCommunities godoc
// @Summary List communities
// @Tags communities
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {array} model.Community
// @Router /communities [get]
func (h *CommunityHandler) ListCommunities(c echo.Context) error {
	skip, limit := pagination(c)
	communities, err := h.communityService.List(c.Request().Context(), skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, communities)
}

// GetCommunity godoc
// @Summary Get a community by id
// @Tags communities
// @Produce json
// @Security BearerAuth
// @Param id path string true "Community ID"
// @Success 200 {object} model.Community
// @Failure 404 {object} errors.ErrorResponse
// @Router /communities/{id} [get]
func (h *CommunityHandler) GetCommunity(c echo.Context) error {
	community, err := h.communityService.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, community)
}

// JoinCommunity godoc
// @Summary Join a community
// @Tags communities
// @Produce json
// @Security BearerAuth
// @Param id path string true "Community ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /communities/{id}/join [post]
func (h *CommunityHandler) JoinCommunity(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return apperrors.ErrUnauthenticated
	}

	if err := h.communityService.Join(c.Request().Context(), identity, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "joined community"})
}

// LeaveCommunity godoc
// @Summary Leave a community
// @Tags communities
// @Produce json
// @Security BearerAuth
// @Param id path string true "Community ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /communities/{id}/leave [post]
func (h *CommunityHandler) LeaveCommunity(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return apperrors.ErrUnauthenticated
	}

	if err := h.communityService.Leave(c.Request().Context(), identity, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "left community"})
}
