package main

import (
	"context"
	"log"
	"net/http"

	_ "mosaic/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"mosaic/internal/auth"
	"mosaic/internal/cache"
	"mosaic/internal/config"
	"mosaic/internal/db"
	"mosaic/internal/handler"
	"mosaic/internal/model"
	"mosaic/internal/repository"
	"mosaic/internal/router"
	"mosaic/internal/service"
	"mosaic/internal/storage"
)

// @title Mosaic API
// @version 1.0
// @description Social networking API with users, follows, posts, comments and JWT authentication.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Follow{},
		&model.Post{},
		&model.PostLike{},
		&model.Comment{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	followRepo := repository.NewFollowRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize upload storage
	var store storage.Store
	switch cfg.StorageBackend {
	case "minio":
		store, err = storage.NewMinIOStore(context.Background(),
			cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey,
			cfg.MinIOBucket, cfg.MinIOUseSSL)
	default:
		store, err = storage.NewDiskStore(cfg.UploadDir)
	}
	if err != nil {
		log.Fatalf("storage init: %v", err)
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo, followRepo, cacheClient)
	followService := service.NewFollowService(userRepo, followRepo)
	postService := service.NewPostService(postRepo, followRepo)
	commentService := service.NewCommentService(commentRepo, postRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, store)
	followHandler := handler.NewFollowHandler(followService)
	postHandler := handler.NewPostHandler(postService)
	commentHandler := handler.NewCommentHandler(commentService)

	// Register routes
	router.Register(
		e,
		cfg,
		tokenStore,
		authHandler,
		userHandler,
		followHandler,
		postHandler,
		commentHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
