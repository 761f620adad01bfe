package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"billed-fe-svc/docs"
	"billed-fe-svc/internal/config"
	"billed-fe-svc/internal/database"
	"billed-fe-svc/internal/handler"
	"billed-fe-svc/internal/middleware"
	"billed-fe-svc/internal/repository"
	"billed-fe-svc/internal/scheduler"
	"billed-fe-svc/internal/service"
	"billed-fe-svc/internal/session"
	"billed-fe-svc/internal/store"
	"billed-fe-svc/internal/view"
	"billed-fe-svc/pkg/logger"
)

// @title Billed Front Service API
// @version 1.0
// @description Employee pages and JSON endpoints of the Billed expense reports front

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Swagger documentation
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", cfg.Server.Port)
	docs.SwaggerInfo.BasePath = ""
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Initialize logger
	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	appLogger.Info("Starting Billed Front Service...")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Submission audit log, optional
	var (
		db             *database.Database
		submissionLogs = repository.NewNoopSubmissionLogRepository()
		retention      *scheduler.RetentionScheduler
	)
	if cfg.Database.Enabled {
		db, err = database.NewDatabase(&cfg.Database)
		if err != nil {
			appLogger.WithField("error", err).Fatal("Failed to connect to database")
		}
		appLogger.Info("Database connected successfully")

		if err := db.AutoMigrate(); err != nil {
			appLogger.WithField("error", err).Fatal("Failed to run database migrations")
		}
		appLogger.Info("Database migrations completed successfully")

		submissionLogs = repository.NewSubmissionLogRepository(db.DB)

		retention = scheduler.NewRetentionScheduler(submissionLogs, appLogger, cfg.Retention.CronExpression, cfg.Retention.Days)
		if err := retention.Start(); err != nil {
			appLogger.WithField("error", err).Fatal("Failed to start retention scheduler")
		}
	} else {
		appLogger.Warn("Database disabled, bill submissions will not be audited")
	}

	// Bills API client, authenticated per request with the caller's token
	client := store.NewClient(store.ClientConfig{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	})
	newStore := func(token string) store.Store {
		return client.WithToken(token)
	}

	// Initialize services
	exportService := service.NewExportService(appLogger)
	decoder := session.NewDecoder(cfg.Session.JWTSecret)

	// Initialize Gin router
	router := gin.New()
	router.SetHTMLTemplate(view.Templates())
	router.MaxMultipartMemory = cfg.Upload.MaxBytes

	// Add middleware
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(middleware.LoggerMiddleware(appLogger))
	router.Use(middleware.ErrorHandler(appLogger))
	router.Use(middleware.Session(decoder, cfg.Session.CookieName, appLogger))
	router.NoRoute(middleware.NoRouteHandler())
	router.NoMethod(middleware.NoMethodHandler())

	// Setup routes
	handler.SetupRoutes(router, newStore, exportService, submissionLogs, cfg.Upload.MaxBytes, appLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		appLogger.WithField("port", cfg.Server.Port).Info("Server starting...")
		appLogger.WithField("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)).Info("Swagger documentation available")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithField("error", err).Fatal("Failed to start server")
		}
	}()

	appLogger.WithField("api_base_url", cfg.API.BaseURL).Info("Server started successfully")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	if retention != nil {
		retention.Stop()
	}

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.WithField("error", err).Fatal("Server forced to shutdown")
	}

	if db != nil {
		if err := db.Close(); err != nil {
			appLogger.WithField("error", err).Error("Failed to close database connection")
		}
	}

	appLogger.Info("Server exited successfully")
}
