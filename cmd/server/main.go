package main

import (
	"log"
	"net/http"

	"lagtalk/docs"

	"github.com/labstack/echo/v4"

	"lagtalk/internal/auth"
	"lagtalk/internal/cache"
	"lagtalk/internal/config"
	"lagtalk/internal/db"
	"lagtalk/internal/handler"
	"lagtalk/internal/mail"
	"lagtalk/internal/middleware"
	"lagtalk/internal/model"
	"lagtalk/internal/repository"
	"lagtalk/internal/router"
	"lagtalk/internal/service"
)

// @title LagTalk API
// @version 1.0
// @description Campus social network API with JWT authentication, role-based access and school-scoped content visibility.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Institution{},
		&model.StudentProfile{},
		&model.InstitutionProfile{},
		&model.Post{},
		&model.Media{},
		&model.Comment{},
		&model.Like{},
		&model.Channel{},
		&model.ChannelMember{},
		&model.Community{},
		&model.CommunityMember{},
		&model.Message{},
		&model.Notification{},
		&model.Complaint{},
		&model.StudentResource{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	studentRepo := repository.NewStudentProfileRepository(gormDB)
	institutionProfileRepo := repository.NewInstitutionProfileRepository(gormDB)
	institutionRepo := repository.NewInstitutionRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	likeRepo := repository.NewLikeRepository(gormDB)
	channelRepo := repository.NewChannelRepository(gormDB)
	communityRepo := repository.NewCommunityRepository(gormDB)
	messageRepo := repository.NewMessageRepository(gormDB)
	notificationRepo := repository.NewNotificationRepository(gormDB)
	complaintRepo := repository.NewComplaintRepository(gormDB)
	resourceRepo := repository.NewResourceRepository(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.AccessTokenTTL)
	tokenStore := auth.NewTokenStore(cacheClient)
	resolver := auth.NewResolver(jwtService, tokenStore)
	guard := middleware.NewGuard(resolver, cfg.CookieName)

	mailer := mail.NewResendMailer(cfg.ResendAPIKey, cfg.ResendFromEmail, cfg.FrontendURL)

	// Services
	authService := service.NewAuthService(userRepo, studentRepo, institutionProfileRepo, institutionRepo, jwtService, tokenStore, mailer)
	userService := service.NewUserService(userRepo, studentRepo, institutionProfileRepo, jwtService)
	notificationService := service.NewNotificationService(notificationRepo)
	postService := service.NewPostService(postRepo, channelRepo, communityRepo, userService, cacheClient)
	commentService := service.NewCommentService(commentRepo, postRepo, userService, notificationService)
	likeService := service.NewLikeService(likeRepo, postRepo, commentRepo, userService, notificationService)
	channelService := service.NewChannelService(channelRepo, userRepo, notificationService)
	communityService := service.NewCommunityService(communityRepo)
	messageService := service.NewMessageService(messageRepo, userRepo)
	institutionService := service.NewInstitutionService(institutionRepo)
	complaintService := service.NewComplaintService(complaintRepo, postRepo, commentRepo, userRepo)
	resourceService := service.NewResourceService(resourceRepo, institutionRepo, userService)

	// Handlers
	handlers := router.Handlers{
		Auth:         handler.NewAuthHandler(authService, cfg),
		User:         handler.NewUserHandler(userService),
		Post:         handler.NewPostHandler(postService),
		Comment:      handler.NewCommentHandler(commentService),
		Like:         handler.NewLikeHandler(likeService),
		Channel:      handler.NewChannelHandler(channelService),
		Community:    handler.NewCommunityHandler(communityService),
		Message:      handler.NewMessageHandler(messageService),
		Notification: handler.NewNotificationHandler(notificationService),
		Complaint:    handler.NewComplaintHandler(complaintService),
		Institution:  handler.NewInstitutionHandler(institutionService),
		Resource:     handler.NewResourceHandler(resourceService),
	}

	router.Register(e, cfg, guard, handlers)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
