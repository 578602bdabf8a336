package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"lagtalk/internal/config"
	"lagtalk/internal/handler"
	"lagtalk/internal/middleware"
)

// Handlers bundles every route handler wired by Register.
type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Post         *handler.PostHandler
	Comment      *handler.CommentHandler
	Like         *handler.LikeHandler
	Channel      *handler.ChannelHandler
	Community    *handler.CommunityHandler
	Message      *handler.MessageHandler
	Notification *handler.NotificationHandler
	Complaint    *handler.ComplaintHandler
	Institution  *handler.InstitutionHandler
	Resource     *handler.ResourceHandler
}

// Register wires routes, guards and the error handler.
func Register(e *echo.Echo, cfg *config.Config, guard *middleware.Guard, h Handlers) {
	e.Use(echomw.RequestID())
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowCredentials: true,
	}))

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = ErrorHandler

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.GET("/auth/verify-email", h.Auth.VerifyEmail)
	api.POST("/auth/forgot-password", h.Auth.ForgotPassword)
	api.POST("/auth/reset-password", h.Auth.ResetPassword)

	api.GET("/institutions", h.Institution.ListInstitutions)
	api.GET("/institutions/:id", h.Institution.GetInstitution)
	api.GET("/institutions/:id/resources", h.Resource.ListResourcesByInstitution)

	// Public feed routes personalize for logged-in callers.
	browse := api.Group("", guard.OptionalIdentity())
	browse.GET("/posts", h.Post.Feed)
	browse.GET("/posts/reels", h.Post.Reels)
	browse.GET("/posts/:id", h.Post.GetPost)
	browse.GET("/posts/:id/comments", h.Comment.ListComments)
	browse.GET("/posts/:id/likes/count", h.Like.PostLikeCount)
	browse.GET("/comments/:id/likes/count", h.Like.CommentLikeCount)
	browse.GET("/institutions/:id/posts", h.Post.PostsByInstitution)

	// Authenticated routes
	secured := api.Group("", guard.RequireIdentity())

	secured.GET("/auth/me", h.Auth.Me)
	secured.POST("/auth/logout", h.Auth.Logout)
	secured.POST("/auth/student-profile", h.Auth.CreateStudentProfile)
	secured.POST("/auth/institution-profile", h.Auth.CreateInstitutionProfile)

	secured.GET("/users", h.User.ListUsers)
	secured.GET("/users/:id", h.User.GetUser)
	secured.GET("/users/by-username/:username", h.User.GetUserByUsername)
	secured.PATCH("/users/me", h.User.UpdateProfile)
	secured.DELETE("/users/:id", h.User.DeactivateUser)

	// Writing content requires a verified email.
	verified := secured.Group("", middleware.RequireVerified())
	verified.POST("/posts", h.Post.CreatePost)
	verified.POST("/posts/:id/comments", h.Comment.CreateComment)
	verified.POST("/posts/:id/like", h.Like.LikePost)
	verified.POST("/comments/:id/like", h.Like.LikeComment)
	verified.POST("/channels", h.Channel.CreateChannel)
	verified.POST("/communities", h.Community.CreateCommunity)
	verified.POST("/messages", h.Message.SendMessage)

	secured.DELETE("/posts/:id", h.Post.DeletePost)
	secured.DELETE("/comments/:id", h.Comment.DeleteComment)
	secured.DELETE("/posts/:id/like", h.Like.UnlikePost)
	secured.DELETE("/comments/:id/like", h.Like.UnlikeComment)

	secured.GET("/channels", h.Channel.ListChannels)
	secured.GET("/channels/:id", h.Channel.GetChannel)
	secured.POST("/channels/:id/join", h.Channel.JoinChannel)
	secured.POST("/channels/:id/leave", h.Channel.LeaveChannel)
	secured.POST("/channels/:id/invite", h.Channel.InviteToChannel)

	secured.GET("/communities", h.Community.ListCommunities)
	secured.GET("/communities/:id", h.Community.GetCommunity)
	secured.POST("/communities/:id/join", h.Community.JoinCommunity)
	secured.POST("/communities/:id/leave", h.Community.LeaveCommunity)

	secured.GET("/messages/:user_id", h.Message.Conversation)
	secured.POST("/messages/:user_id/read", h.Message.MarkConversationRead)

	secured.GET("/notifications", h.Notification.ListNotifications)
	secured.GET("/notifications/unread-count", h.Notification.UnreadCount)
	secured.POST("/notifications/:id/read", h.Notification.MarkNotificationRead)
	secured.POST("/notifications/read-all", h.Notification.MarkAllNotificationsRead)

	secured.POST("/complaints", h.Complaint.FileComplaint)

	secured.DELETE("/resources/:id", h.Resource.DeleteResource)

	// Institution registration and resource publishing require the
	// institution role; admin passes.
	institution := secured.Group("", middleware.RequireInstitution())
	institution.POST("/institutions", h.Institution.CreateInstitution)
	institution.POST("/resources", h.Resource.CreateResource)

	// Admin routes
	admin := secured.Group("/admin", middleware.RequireAdmin())
	admin.GET("/complaints", h.Complaint.ListComplaints)
	admin.POST("/complaints/:id/resolve", h.Complaint.ResolveComplaint)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
