package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "lagtalk/internal/errors"
	"lagtalk/internal/middleware"
	"lagtalk/internal/model"
	"lagtalk/internal/service"
)

// PostHandler handles the feed, reels and single-post endpoints.
type PostHandler struct {
	postService service.PostService
}

// NewPostHandler creates a new post handler.
func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// MediaRequest references already-uploaded media for a new post.
type MediaRequest struct {
	MediaType string `json:"media_type" validate:"required,oneof=image video"`
	URL       string `json:"url" validate:"required,url"`
	Metadata  string `json:"metadata"`
}

// CreatePostRequest represents a post or reel creation request.
type CreatePostRequest struct {
	Content       string         `json:"content" validate:"required,max=10000"`
	PostType      string         `json:"post_type" validate:"omitempty,oneof=post reel"`
	Privacy       string         `json:"privacy" validate:"omitempty,oneof=public school_only followers_only"`
	IsSchoolScope bool           `json:"is_school_scope"`
	ChannelID     string         `json:"channel_id" validate:"omitempty,uuid4"`
	CommunityID   string         `json:"community_id" validate:"omitempty,uuid4"`
	Media         []MediaRequest `json:"media" validate:"omitempty,dive"`
}

// CreatePost godoc
// @Summary Create a post or reel
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreatePostRequest true "Post data"
// @Success 201 {object} model.Post
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /posts [post]
func (h *PostHandler) CreatePost(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return apperrors.ErrUnauthenticated
	}

	var req CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := service.CreatePostInput{
		Content:       req.Content,
		PostType:      model.PostType(req.PostType),
		Privacy:       model.PostPrivacy(req.Privacy),
		IsSchoolScope: req.IsSchoolScope,
		ChannelID:     req.ChannelID,
		CommunityID:   req.CommunityID,
	}
	for _, m := range req.Media {
		input.Media = append(input.Media, service.MediaInput{
			MediaType: model.MediaType(m.MediaType),
			URL:       m.URL,
			Metadata:  m.Metadata,
		})
	}

	post, err := h.postService.Create(c.Request().Context(), identity, input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, post)
}

// Feed godoc
// @Summary List posts visible to the caller, newest first
// @Tags posts
// @Produce json
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Param school_scope query string false "Restrict to an institution id"
// @Success 200 {array} model.Post
// @Router /posts [get]
func (h *PostHandler) Feed(c echo.Context) error {
	identity, _ := middleware.IdentityFrom(c)
	skip, limit := pagination(c)

	posts, err := h.postService.Feed(c.Request().Context(), identity, skip, limit, c.QueryParam("school_scope"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Reels godoc
// @Summary List reels visible to the caller
// @Tags posts
// @Produce json
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {array} model.Post
// @Router /posts/reels [get]
func (h *PostHandler) Reels(c echo.Context) error {
	identity, _ := middleware.IdentityFrom(c)
	skip, limit := pagination(c)

	posts, err := h.postService.Reels(c.Request().Context(), identity, skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// GetPost godoc
// @Summary Get a single post
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} model.Post
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{id} [get]
func (h *PostHandler) GetPost(c echo.Context) error {
	identity, _ := middleware.IdentityFrom(c)

	post, err := h.postService.GetByID(c.Request().Context(), identity, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// PostsByInstitution godoc
// @Summary List an institution's posts visible to the caller
// @Tags posts
// @Produce json
// @Param id path string true "Institution ID"
// @Param post_type query string false "post or reel"
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {array} model.Post
// @Router /institutions/{id}/posts [get]
func (h *PostHandler) PostsByInstitution(c echo.Context) error {
	identity, _ := middleware.IdentityFrom(c)
	skip, limit := pagination(c)

	posts, err := h.postService.ByInstitution(
		c.Request().Context(),
		identity,
		c.Param("id"),
		model.PostType(c.QueryParam("post_type")),
		skip,
		limit,
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// DeletePost godoc
// @Summary Delete a post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{id} [delete]
func (h *PostHandler) DeletePost(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return apperrors.ErrUnauthenticated
	}

	if err := h.postService.Delete(c.Request().Context(), identity, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "post deleted",
	})
}
