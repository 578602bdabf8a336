package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "lagtalk/internal/errors"
	"lagtalk/internal/middleware"
	"lagtalk/internal/service"
)

// ComplaintHandler handles moderation reports. Listing and resolving sit
// behind the admin guard at the route layer.
type ComplaintHandler struct {
	complaintService service.ComplaintService
}

// NewComplaintHandler creates a new complaint handler.
func NewComplaintHandler(complaintService service.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaintService: complaintService}
}

// FileComplaintRequest targets exactly one of post, comment or user.
type FileComplaintRequest struct {
	PostID    string `json:"post_id" validate:"omitempty,uuid4"`
	CommentID string `json:"comment_id" validate:"omitempty,uuid4"`
	UserID    string `json:"user_id" validate:"omitempty,uuid4"`
	Reason    string `json:"reason" validate:"required,max=2048"`
}

// FileComplaint godoc
// @Summary File a complaint against a post, comment or user
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body FileComplaintRequest true "Complaint data"
// @Success 201 {object} model.Complaint
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /complaints [post]
func (h *ComplaintHandler) FileComplaint(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return apperrors.ErrUnauthenticated
	}

	var req FileComplaintRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	complaint, err := h.complaintService.File(c.Request().Context(), identity, service.FileComplaintInput{
		PostID:    req.PostID,
		CommentID: req.CommentID,
		UserID:    req.UserID,
		Reason:    req.Reason,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, complaint)
}

// ListComplaints godoc
// @Summary List complaints
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Param unresolved_only query bool false "Only unresolved complaints"
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {array} model.Complaint
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/complaints [get]
func (h *ComplaintHandler) ListComplaints(c echo.Context) error {
	skip, limit := pagination(c)
	unresolvedOnly := c.QueryParam("unresolved_only") == "true"

	complaints, err := h.complaintService.List(c.Request().Context(), unresolvedOnly, skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, complaints)
}

// ResolveComplaint godoc
// @Summary Mark a complaint as resolved
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Success 200 {object} model.Complaint
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/complaints/{id}/resolve [post]
func (h *ComplaintHandler) ResolveComplaint(c echo.Context) error {
	complaint, err := h.complaintService.Resolve(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, complaint)
}
