package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "lagtalk/internal/errors"
	"lagtalk/internal/middleware"
	"lagtalk/internal/service"
)

// MessageHandler handles direct messages.
type MessageHandler struct {
	messageService service.MessageService
}

// NewMessageHandler creates a new message handler.
func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// SendMessageRequest represents a direct message send request.
type SendMessageRequest struct {
	RecipientID string `json:"recipient_id" validate:"required,uuid4"`
	Content     string `json:"content" validate:"required,max=5000"`
}

// SendMessage godoc
// @Summary Send a direct message
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SendMessageRequest true "Message data"
// @Success 201 {object} model.Message
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /messages [post]
func (h *MessageHandler) SendMessage(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return apperrors.ErrUnauthenticated
	}

	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	message, err := h.messageService.Send(c.Request().Context(), identity, req.RecipientID, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, message)
}

// Conversation godoc
// @Summary List the conversation with another user, newest first
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param user_id path string true "Other user ID"
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {array} model.Message
// @Failure 401 {object} errors.ErrorResponse
// @Router /messages/{user_id} [get]
func (h *MessageHandler) Conversation(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return apperrors.ErrUnauthenticated
	}
	skip, limit := pagination(c)

	messages, err := h.messageService.Conversation(c.Request().Context(), identity, c.Param("user_id"), skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messages)
}

// MarkConversationRead godoc
// @Summary Mark every message from a user as read
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param user_id path string true "Sender user ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Router /messages/{user_id}/read [post]
func (h *MessageHandler) MarkConversationRead(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return apperrors.ErrUnauthenticated
	}

	if err := h.messageService.MarkRead(c.Request().Context(), identity, c.Param("user_id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "conversation marked read"})
}
