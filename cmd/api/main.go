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

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	pkgvalidator "github.com/meetpilot-team/meetpilot/pkg/validator"

	"github.com/meetpilot-team/meetpilot/internal/adapter/handler"
	"github.com/meetpilot-team/meetpilot/internal/adapter/repository"
	"github.com/meetpilot-team/meetpilot/internal/domain/repositories"
	"github.com/meetpilot-team/meetpilot/internal/infrastructure/database"
	aiuse "github.com/meetpilot-team/meetpilot/internal/usecase/ai"
	meetinguse "github.com/meetpilot-team/meetpilot/internal/usecase/meeting"
	pkgai "github.com/meetpilot-team/meetpilot/pkg/ai"
	"github.com/meetpilot-team/meetpilot/pkg/config"
)

// @title           MeetPilot API
// @version         1.0
// @description     Meeting assistant backend: meetings, action items, and transcript analysis

// @host      localhost:8080
// @BasePath  /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize the entity store backend
	log.Printf("📦 Initializing %s entity store...", cfg.Store.Backend)
	var meetingStore repositories.MeetingStore
	var itemStore repositories.ActionItemStore

	switch cfg.Store.Backend {
	case config.StoreBackendPostgres:
		db, err := database.NewPostgresDB(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.CloseDB(db)

		// Run migrations only when explicitly enabled in config.
		// Production deployments should manage schema via sql-migrate.
		if cfg.Database.AutoMigrate {
			if cfg.Server.Environment == "production" {
				log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
			}
			if err := database.Migrate(db); err != nil {
				log.Fatalf("Failed to run migrations: %v", err)
			}
		}

		meetingStore = repository.NewMeetingPostgresStore(db)
		itemStore = repository.NewActionItemPostgresStore(db)

	case config.StoreBackendRedis:
		// The shared document client is created lazily on first use
		client := func() (*redis.Client, error) { return database.DocumentClient(cfg) }
		meetingStore = repository.NewMeetingDocumentStore(client, cfg.Redis.KeyPrefix)
		itemStore = repository.NewActionItemDocumentStore(client, cfg.Redis.KeyPrefix)

	case config.StoreBackendMemory:
		log.Println("⚠️  Using in-memory store (data is lost on restart)")
		store := repository.NewMemoryStore()
		meetingStore = store.Meetings()
		itemStore = store.ActionItems()
	}

	// Initialize services
	log.Println("⚙️  Initializing services...")
	meetingService := meetinguse.NewService(meetingStore, itemStore, logger)

	chatClient := pkgai.NewChatClient(&cfg.AI)
	aiService := aiuse.NewService(chatClient, cfg, logger)

	// Initialize handlers
	meetingHandler := handler.NewMeetingHandler(meetingService, logger)
	actionItemHandler := handler.NewActionItemHandler(meetingService, logger)
	aiController := handler.NewAIController(aiService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, meetingHandler, actionItemHandler, aiController)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
