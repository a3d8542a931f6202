package main

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/kwolosonovich/warbler/internal/metrics"
	"github.com/kwolosonovich/warbler/internal/router"
	"github.com/kwolosonovich/warbler/internal/sessions"
	"github.com/kwolosonovich/warbler/pkg/config"
	"github.com/kwolosonovich/warbler/pkg/validators"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize database connection
	db, err := config.InitDB(cfg.Postgres.ConnStr)
	if err != nil {
		logrus.Fatalf("failed to initialize database: %v", err)
	}
	defer config.CloseDB(db)

	// Initialize the Redis-backed session store
	ctx := context.Background()
	redisClient, err := config.InitRedis(ctx, cfg.Redis)
	if err != nil {
		logrus.Fatalf("failed to initialize Redis: %v", err)
	}
	defer redisClient.Close()
	sessionStore := sessions.NewRedisStore(redisClient, cfg.SessionTTL())

	// Metrics
	m := metrics.InitMetrics()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Setup global middleware
	router.SetupMiddleware(e, cfg, m)

	// Setup routes and dependencies
	router.SetupRoutes(e, db, sessionStore, cfg, m)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	logrus.Fatal(e.Start(cfg.HTTPAddr()))
}
