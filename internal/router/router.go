package router

import (
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/kwolosonovich/warbler/internal/credentials"
	"github.com/kwolosonovich/warbler/internal/handlers"
	"github.com/kwolosonovich/warbler/internal/metrics"
	"github.com/kwolosonovich/warbler/internal/middleware"
	"github.com/kwolosonovich/warbler/internal/models"
	"github.com/kwolosonovich/warbler/internal/repositories"
	"github.com/kwolosonovich/warbler/internal/sessions"
	"github.com/kwolosonovich/warbler/pkg/config"
)

// SetupMiddleware configures global Echo middleware. Every request runs
// under a deadline so a stuck store turns into a retryable failure
// instead of a hung request.
func SetupMiddleware(e *echo.Echo, cfg *config.Config, m *metrics.Metrics) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.ContextTimeout(cfg.RequestTimeout()))
	e.Use(m.Middleware())
	logrus.Info("global middleware configured")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, sessionStore sessions.Store, cfg *config.Config, m *metrics.Metrics) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Message{},
		&models.Follow{},
		&models.Like{},
	)
	if err != nil {
		logrus.Fatalf("failed to auto migrate models: %v", err)
	}
	logrus.Info("auto-migrations completed for all models")

	// Health and metrics - always accessible
	e.GET("/health", handlers.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// --- Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	messageRepo := repositories.NewPostgresMessageRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db, cfg.Warbler.AllowSelfFollow)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	credentialStore := credentials.NewStore(userRepo)

	// Session resolution runs on every route; gating is per-route.
	e.Use(middleware.ResolveUser(sessionStore, userRepo))
	requireUser := middleware.RequireUser()

	root := e.Group("")

	authHandler := handlers.NewAuthHandler(userRepo, credentialStore, sessionStore, m)
	authHandler.RegisterAuthRoutes(root)
	logrus.Info("auth routes configured")

	userHandler := handlers.NewUserHandler(userRepo, messageRepo, followRepo, sessionStore, cfg.Warbler.UserPageMessageLimit)
	userHandler.RegisterUserRoutes(root, requireUser)
	logrus.Info("user routes configured")

	followHandler := handlers.NewFollowHandler(followRepo, userRepo, m)
	followHandler.RegisterFollowRoutes(root, requireUser)
	logrus.Info("follow routes configured")

	messageHandler := handlers.NewMessageHandler(messageRepo, likeRepo, m)
	messageHandler.RegisterMessageRoutes(root, requireUser)
	logrus.Info("message routes configured")

	likeHandler := handlers.NewLikeHandler(likeRepo, messageRepo, userRepo)
	likeHandler.RegisterLikeRoutes(root, requireUser)
	logrus.Info("like routes configured")

	feedHandler := handlers.NewFeedHandler(messageRepo, followRepo, cfg.Warbler.FeedLimit)
	feedHandler.RegisterFeedRoutes(root)
	logrus.Info("feed routes configured")

	logrus.Info("all routes configured")
}
