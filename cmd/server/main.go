package main

import (
	"log"
	"time"

	"pulseboard_app_go/config"
	"pulseboard_app_go/db"
	"pulseboard_app_go/handlers"
	"pulseboard_app_go/middleware"
	"pulseboard_app_go/models"
	"pulseboard_app_go/services"
	"pulseboard_app_go/services/jobs"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// Reveal subscriptions and toast notifiers left behind by visitors who never
// came back are swept after this long.
const uiStateMaxAge = 30 * time.Minute

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(&models.DemoRequest{}, &models.Session{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Public routes
	e.GET("/", handlers.LandingHandler)
	e.GET("/healthz", handlers.HealthHandler)
	e.GET("/robots.txt", handlers.RobotsHandler)
	e.GET("/sitemap.xml", handlers.GetSitemapHandler)

	// Demo request dialog
	e.GET("/demo", handlers.DemoModalHandler)
	e.POST("/demo", handlers.DemoSubmitHandler, middleware.DemoRequestRateLimiter.Middleware())
	e.POST("/demo/cancel", handlers.DemoCancelHandler)

	// HTMX endpoints backing the landing page behaviors
	e.POST("/htmx/reveal", handlers.RevealHandler)
	e.GET("/htmx/toast", handlers.ToastHandler)
	e.POST("/htmx/toast/dismiss", handlers.ToastDismissHandler)

	// Admin authentication
	e.GET("/login", handlers.LoginHandler)
	e.POST("/login", handlers.LoginPostHandler, middleware.LoginRateLimiter.Middleware())
	e.POST("/logout", handlers.LogoutHandler)

	// Admin routes (session required)
	admin := e.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("", handlers.AdminDashboardHandler)
		admin.GET("/demo-requests/export", handlers.ExportDemoRequestsHandler)
	}

	api := e.Group("/api/demo-requests")
	api.Use(middleware.RequireAdmin())
	{
		api.PUT("/:id/status", handlers.UpdateDemoRequestStatusHandler)
	}

	// Retention job for old demo requests
	jobs.StartScheduler(db.DB, cfg)

	// Hourly cleanup of expired sessions and abandoned UI state
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			if err := services.CleanupExpiredSessions(db.DB); err != nil {
				log.Printf("Error cleaning up expired sessions: %v", err)
			}
			handlers.SweepUIState(uiStateMaxAge)
		}
	}()

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
