// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"log"
	"time"

	"rare/internal/cache"
	"rare/internal/config"
	"rare/internal/middleware"
	"rare/internal/models"
	"rare/internal/repository"
	"rare/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config           *config.Config
	db               *gorm.DB
	redis            *redis.Client
	app              *fiber.App
	promMiddleware   *fiberprometheus.FiberPrometheus
	userRepo         repository.UserRepository
	postRepo         repository.PostRepository
	commentRepo      repository.CommentRepository
	categoryRepo     repository.CategoryRepository
	tagRepo          repository.TagRepository
	reactionRepo     repository.ReactionRepository
	subscriptionRepo repository.SubscriptionRepository
	avatarService    *service.MediaService
	headerService    *service.MediaService
}

// NewServer creates a Server instance on top of an established database
// handle. The caller owns connection setup and schema bootstrap; the server
// only consumes the pool.
func NewServer(cfg *config.Config, db *gorm.DB) (*Server, error) {
	prom := middleware.InitMetrics("rare-api")

	return &Server{
		config:           cfg,
		db:               db,
		redis:            cache.GetClient(),
		promMiddleware:   prom,
		userRepo:         repository.NewUserRepository(db),
		postRepo:         repository.NewPostRepository(db),
		commentRepo:      repository.NewCommentRepository(db),
		categoryRepo:     repository.NewCategoryRepository(db),
		tagRepo:          repository.NewTagRepository(db),
		reactionRepo:     repository.NewReactionRepository(db),
		subscriptionRepo: repository.NewSubscriptionRepository(db),
		avatarService:    service.NewAvatarService(),
		headerService:    service.NewHeaderService(),
	}, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate request ID into the request context
	app.Use(middleware.ContextMiddleware())

	// OpenTelemetry tracing
	app.Use(middleware.TracingMiddleware())

	// Prometheus HTTP metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept",
		MaxAge:       86400,
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	app.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Rare API Metrics Dashboard",
	}))

	// Auth routes
	app.Post("/register", s.Register)
	app.Post("/login", s.Login)

	// User routes; specific /:id/:resource routes BEFORE generic /:id
	users := app.Group("/users")
	users.Get("/", s.GetUsers)
	users.Get("/:id/posts", s.GetUserPosts)
	users.Post("/:id/profile-picture", s.UploadProfilePicture)
	users.Get("/:id/profile-picture", s.GetProfilePicture)
	users.Delete("/:id/profile-picture", s.DeleteProfilePicture)
	users.Get("/:id", s.GetUser)
	users.Put("/:id", s.UpdateUser)
	users.Delete("/:id", s.DeleteUser)

	// Post routes; /search and /:id/:resource before generic /:id
	posts := app.Group("/posts")
	posts.Get("/", s.GetPosts)
	posts.Post("/", s.CreatePost)
	posts.Get("/search", s.SearchPosts)
	posts.Post("/:id/header-image", s.UploadHeaderImage)
	posts.Get("/:id/header-image", s.GetHeaderImage)
	posts.Delete("/:id/header-image", s.DeleteHeaderImage)
	posts.Get("/:id/comments-with-details", s.GetPostCommentsWithDetails)
	posts.Get("/:id/comments", s.GetPostComments)
	posts.Get("/:id/tags", s.GetPostTags)
	posts.Put("/:id/tags", s.SavePostTags)
	posts.Get("/:id/reactions/user/:userId", s.GetUserPostReactions)
	posts.Post("/:id/reactions", s.AddPostReaction)
	posts.Get("/:id/reactions", s.GetPostReactions)
	posts.Delete("/:id/reactions", s.RemovePostReaction)
	posts.Get("/:id/with-reactions", s.GetPostWithReactions)
	posts.Get("/:id", s.GetPost)
	posts.Put("/:id", s.UpdatePost)
	posts.Delete("/:id", s.DeletePost)

	// Comment routes
	comments := app.Group("/comments")
	comments.Get("/", s.GetComments)
	comments.Post("/", s.CreateComment)
	comments.Get("/:id", s.GetComment)
	comments.Put("/:id", s.UpdateComment)
	comments.Delete("/:id", s.DeleteComment)

	// Tag routes
	tags := app.Group("/tags")
	tags.Get("/", s.GetTags)
	tags.Post("/", s.CreateTag)
	tags.Get("/:id/posts", s.GetTagPosts)
	tags.Get("/:id", s.GetTag)
	tags.Put("/:id", s.UpdateTag)
	tags.Delete("/:id", s.DeleteTag)

	// Category routes
	categories := app.Group("/categories")
	categories.Get("/", s.GetCategories)
	categories.Post("/", s.CreateCategory)
	categories.Get("/:id", s.GetCategory)
	categories.Put("/:id", s.UpdateCategory)
	categories.Delete("/:id", s.DeleteCategory)

	// Reaction vocabulary routes
	reactions := app.Group("/reactions")
	reactions.Get("/", s.GetReactions)
	reactions.Post("/", s.CreateReaction)

	// Subscription routes; /author/:id before generic /:id
	subscriptions := app.Group("/subscriptions")
	subscriptions.Get("/author/:id", s.GetAuthorSubscriptionCount)
	subscriptions.Get("/:id", s.GetSubscription)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests. The cache is fail-open, so
// a missing Redis degrades the report without failing readiness; the database
// is required.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "disabled"
	if s.redis != nil {
		redisStatus = "healthy"
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "Rare API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
