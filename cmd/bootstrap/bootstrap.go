package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctor-directory/config"
	deliveryHttp "doctor-directory/internal/delivery/http"
	"doctor-directory/internal/delivery/http/handler"
	"doctor-directory/internal/delivery/http/middleware"
	domainRepo "doctor-directory/internal/domain/repository"
	"doctor-directory/internal/infrastructure/cache"
	"doctor-directory/internal/infrastructure/database"
	"doctor-directory/internal/infrastructure/upstream"
	"doctor-directory/internal/repository"
	"doctor-directory/internal/usecase"
	"doctor-directory/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config           *config.Config
	DB               *gorm.DB
	RedisClient      *redis.Client
	DirectoryUsecase usecase.DirectoryUsecase
	Server           *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	setupLogger(cfg.App)
	logrus.Info("Configuration loaded successfully")

	// Initialize database, only when the source or the mirror needs it
	if cfg.UsesPostgres() {
		db, err := database.NewPostgresConnection(cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = db
		if err := database.Migrate(db); err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		logrus.Info("Database connected successfully")
	}

	// Initialize Redis, a cache outage only disables caching
	if cfg.Redis.CacheEnabled && cfg.Source.Driver == config.SourceDriverHTTP {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		cancel()
		if err != nil {
			logrus.Warnf("Failed to connect to Redis, continuing without cache: %+v", err)
		} else {
			app.RedisClient = redisClient
			logrus.Info("Redis connected successfully")
		}
	}

	// Initialize all layers
	app.DirectoryUsecase = initializeDirectory(cfg, app.DB, app.RedisClient)
	app.Server = initializeServer(cfg, app.DirectoryUsecase)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.AppConfig) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// initializeDirectory picks the doctor source and builds the directory session
func initializeDirectory(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) usecase.DirectoryUsecase {
	log := logrus.StandardLogger()

	// Initialize repositories
	listingRepo := repository.NewDoctorListingRepository()

	var source domainRepo.DoctorSource
	switch cfg.Source.Driver {
	case config.SourceDriverPostgres:
		source = repository.NewPostgresDoctorSource(db, log, listingRepo)
	default:
		source = upstream.NewDoctorClient(cfg.Upstream, nil, log)
		if redisClient != nil {
			source = repository.NewCachedDoctorSource(source, redisClient, log, cfg.Redis.CacheKey, cfg.Redis.CacheTTL)
		}
	}

	var mirrorDB *gorm.DB
	var mirrorRepo domainRepo.DoctorListingRepository
	if cfg.Source.MirrorEnabled {
		mirrorDB = db
		mirrorRepo = listingRepo
	}

	return usecase.NewDirectoryUsecase(mirrorDB, log, source, mirrorRepo, cfg.Directory.SuggestionLimit)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, directoryUsecase usecase.DirectoryUsecase) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(directoryUsecase, customValidator)
	healthHandler := handler.NewHealthHandler(directoryUsecase)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(logrus.StandardLogger())

	// Initialize router
	router := deliveryHttp.NewRouter(doctorHandler, healthHandler, corsMiddleware, loggingMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server, loads the directory once and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// The server answers 503 until the single load finishes
	loadCtx, cancelLoad := context.WithCancel(context.Background())
	go func() {
		if err := app.DirectoryUsecase.Load(loadCtx); err != nil {
			logrus.Errorf("Doctor directory will stay unavailable: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown(cancelLoad)
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown(cancelLoad context.CancelFunc) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")
	cancelLoad()

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
