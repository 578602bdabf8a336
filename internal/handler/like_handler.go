package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "lagtalk/internal/errors"
	"lagtalk/internal/middleware"
	"lagtalk/internal/service"
)

// LikeHandler handles likes on posts and comments.
type LikeHandler struct {
	likeService service.LikeService
}

// NewLikeHandler creates a new like handler.
func NewLikeHandler(likeService service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// LikePost godoc
// @Summary Like a post
// @Tags likes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 201 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /posts/{id}/like [post]
func (h *LikeHandler) LikePost(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return apperrors.ErrUnauthenticated
	}

	if err := h.likeService.LikePost(c.Request().Context(), identity, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "post liked"})
}

// UnlikePost godoc
// @Summary Remove a like from a post
// @Tags likes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{id}/like [delete]
func (h *LikeHandler) UnlikePost(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return apperrors.ErrUnauthenticated
	}

	if err := h.likeService.UnlikePost(c.Request().Context(), identity, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "like removed"})
}

// PostLikeCount godoc
// @Summary Count likes on a post
// @Tags likes
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} map[string]int64
// @Router /posts/{id}/likes/count [get]
func (h *LikeHandler) PostLikeCount(c echo.Context) error {
	count, err := h.likeService.PostLikeCount(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]int64{"count": count})
}

// LikeComment godoc
// @Summary Like a comment
// @Tags likes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Comment ID"
// @Success 201 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /comments/{id}/like [post]
func (h *LikeHandler) LikeComment(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return apperrors.ErrUnauthenticated
	}

	if err := h.likeService.LikeComment(c.Request().Context(), identity, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "comment liked"})
}

// UnlikeComment godoc
// @Summary Remove a like from a comment
// @Tags likes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Comment ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /comments/{id}/like [delete]
func (h *LikeHandler) UnlikeComment(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return apperrors.ErrUnauthenticated
	}

	if err := h.likeService.UnlikeComment(c.Request().Context(), identity, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "like removed"})
}

// CommentLikeCount godoc
// @Summary Count likes on a comment
// @Tags likes
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} map[string]int64
// @Router /comments/{id}/likes/count [get]
func (h *LikeHandler) CommentLikeCount(c echo.Context) error {
	count, err := h.likeService.CommentLikeCount(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]int64{"count": count})
}
