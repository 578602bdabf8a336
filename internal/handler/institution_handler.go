package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lagtalk/internal/service"
)

// InstitutionHandler handles the school directory.
type InstitutionHandler struct {
	institutionService service.InstitutionService
}

// NewInstitutionHandler creates a new institution handler.
func NewInstitutionHandler(institutionService service.InstitutionService) *InstitutionHandler {
	return &InstitutionHandler{institutionService: institutionService}
}

// CreateInstitutionRequest represents an institution registration request.
type CreateInstitutionRequest struct {
	Name           string `json:"name" validate:"required,max=255"`
	Email          string `json:"email" validate:"omitempty,email"`
	Description    string `json:"description" validate:"omitempty,max=2048"`
	Website        string `json:"website" validate:"omitempty,url"`
	Location       string `json:"location" validate:"omitempty,max=255"`
	ProfilePicture string `json:"profile_picture" validate:"omitempty,url"`
}

// CreateInstitution godoc
// @Summary Register an institution
// @Tags institutions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateInstitutionRequest true "Institution data"
// @Success 201 {object} model.Institution
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /institutions [post]
func (h *InstitutionHandler) CreateInstitution(c echo.Context) error {
	var req CreateInstitutionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	institution, err := h.institutionService.Create(c.Request().Context(), service.CreateInstitutionInput{
		Name:           req.Name,
		Email:          req.Email,
		Description:    req.Description,
		Website:        req.Website,
		Location:       req.Location,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, institution)
}

// ListInstitutions godoc
// @Summary List institutions
// @Tags institutions
// @Produce json
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {array} model.Institution
// @Router /institutions [get]
func (h *InstitutionHandler) ListInstitutions(c echo.Context) error {
	skip, limit := pagination(c)
	institutions, err := h.institutionService.List(c.Request().Context(), skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, institutions)
}

// GetInstitution godoc
// @Summary Get an institution by id
// @Tags institutions
// @Produce json
// @Param id path string true "Institution ID"
// @Success 200 {object} model.Institution
// @Failure 404 {object} errors.ErrorResponse
// @Router /institutions/{id} [get]
func (h *InstitutionHandler) GetInstitution(c echo.Context) error {
	institution, err := h.institutionService.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, institution)
}
