package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "lagtalk/internal/errors"
	"lagtalk/internal/middleware"
	"lagtalk/internal/service"
)

// ChannelHandler handles channel endpoints.
type ChannelHandler struct {
	channelService service.ChannelService
}

// NewChannelHandler creates a new channel handler.
func NewChannelHandler(channelService service.ChannelService) *ChannelHandler {
	return &ChannelHandler{channelService: channelService}
}

// CreateChannelRequest represents a channel creation request.
type CreateChannelRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"omitempty,max=2048"`
	IsPrivate   bool   `json:"is_private"`
}

// InviteRequest names the user to add to a channel.
type InviteRequest struct {
	UserID string `json:"user_id" validate:"required,uuid4"`
}

// CreateChannel godoc
// @Summary Create a channel
// @Tags channels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateChannelRequest true "Channel data"
// @Success 201 {object} model.Channel
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /channels [post]
func (h *ChannelHandler) CreateChannel(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return apperrors.ErrUnauthenticated
	}

	var req CreateChannelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	channel, err := h.channelService.Create(c.Request().Context(), identity, req.Name, req.Description, req.IsPrivate)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, channel)
}

// ListChannels godoc
// @Summary List channels
// @Tags channels
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {array} model.Channel
// @Router /channels [get]
func (h *ChannelHandler) ListChannels(c echo.Context) error {
	skip, limit := pagination(c)
	channels, err := h.channelService.List(c.Request().Context(), skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, channels)
}

// GetChannel godoc
// @Summary Get a channel by id
// @Tags channels
// @Produce json
// @Security BearerAuth
// @Param id path string true "Channel ID"
// @Success 200 {object} model.Channel
// @Failure 404 {object} errors.ErrorResponse
// @Router /channels/{id} [get]
func (h *ChannelHandler) GetChannel(c echo.Context) error {
	channel, err := h.channelService.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, channel)
}

// JoinChannel godoc
// @Summary Join a public channel
// @Tags channels
// @Produce json
// @Security BearerAuth
// @Param id path string true "Channel ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /channels/{id}/join [post]
func (h *ChannelHandler) JoinChannel(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return apperrors.ErrUnauthenticated
	}

	if err := h.channelService.Join(c.Request().Context(), identity, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "joined channel"})
}

// LeaveChannel godoc
// @Summary Leave a channel
// @Tags channels
// @Produce json
// @Security BearerAuth
// @Param id path string true "Channel ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /channels/{id}/leave [post]
func (h *ChannelHandler) LeaveChannel(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return apperrors.ErrUnauthenticated
	}

	if err := h.channelService.Leave(c.Request().Context(), identity, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "left channel"})
}

// InviteToChannel godoc
// @Summary Invite a user to a channel
// @Tags channels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Channel ID"
// @Param request body InviteRequest true "Invitee"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /channels/{id}/invite [post]
func (h *ChannelHandler) InviteToChannel(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return apperrors.ErrUnauthenticated
	}

	var req InviteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.channelService.Invite(c.Request().Context(), identity, c.Param("id"), req.UserID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "user invited"})
}
