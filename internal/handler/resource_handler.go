package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "lagtalk/internal/errors"
	"lagtalk/internal/middleware"
	"lagtalk/internal/service"
)

// ResourceHandler handles student resources published by institutions.
type ResourceHandler struct {
	resourceService service.ResourceService
}

// NewResourceHandler creates a new resource handler.
func NewResourceHandler(resourceService service.ResourceService) *ResourceHandler {
	return &ResourceHandler{resourceService: resourceService}
}

// CreateResourceRequest represents a student resource publication request.
type CreateResourceRequest struct {
	InstitutionID string `json:"institution_id" validate:"required,uuid4"`
	Title         string `json:"title" validate:"required,max=255"`
	Description   string `json:"description" validate:"omitempty,max=2048"`
	URL           string `json:"url" validate:"omitempty,url"`
	ResourceType  string `json:"resource_type" validate:"omitempty,max=64"`
}

// CreateResource godoc
// @Summary Publish a student resource for an institution
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateResourceRequest true "Resource data"
// @Success 201 {object} model.StudentResource
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /resources [post]
func (h *ResourceHandler) CreateResource(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return apperrors.ErrUnauthenticated
	}

	var req CreateResourceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resource, err := h.resourceService.Create(c.Request().Context(), identity, service.CreateResourceInput{
		InstitutionID: req.InstitutionID,
		Title:         req.Title,
		Description:   req.Description,
		URL:           req.URL,
		ResourceType:  req.ResourceType,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, resource)
}

// ListResourcesByInstitution godoc
// @Summary List an institution's student resources
// @Tags resources
// @Produce json
// @Param id path string true "Institution ID"
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {array} model.StudentResource
// @Router /institutions/{id}/resources [get]
func (h *ResourceHandler) ListResourcesByInstitution(c echo.Context) error {
	skip, limit := pagination(c)
	resources, err := h.resourceService.ListByInstitution(c.Request().Context(), c.Param("id"), skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resources)
}

// DeleteResource godoc
// @Summary Delete a student resource
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 204 "No Content"
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /resources/{id} [delete]
func (h *ResourceHandler) DeleteResource(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return apperrors.ErrUnauthenticated
	}
	if err := h.resourceService.Delete(c.Request().Context(), identity, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
