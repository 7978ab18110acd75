package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/studyshelf/backend/docs"
	"github.com/studyshelf/backend/internal/cache"
	"github.com/studyshelf/backend/internal/config"
	"github.com/studyshelf/backend/internal/handlers"
	"github.com/studyshelf/backend/internal/logger"
	"github.com/studyshelf/backend/internal/middlewares"
	"github.com/studyshelf/backend/internal/repositories"
	"github.com/studyshelf/backend/internal/services"
	"github.com/studyshelf/backend/internal/storage"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title StudyShelf API
// @version 1.0
// @description Personal learning library: courses, books, calendar and progress tracking

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting StudyShelf backend")

	// Connect to database
	db, err := connectDB(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := runMigrations(db); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize storage
	fileStorage, mediaFiles, err := setupStorage(cfg)
	if err != nil {
		logger.Logger.Fatal("Failed to initialize storage", zap.Error(err))
	}

	// Initialize dashboard cache
	dashboardCache, redisClient := setupCache(cfg)
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Initialize repositories
	bookRepo := repositories.NewBookRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	courseRepo := repositories.NewCourseRepository(db)
	lessonRepo := repositories.NewLessonRepository(db)
	progressRepo := repositories.NewLessonProgressRepository(db)
	streakRepo := repositories.NewDailyStreakRepository(db)
	monthlyRepo := repositories.NewMonthlyProgressRepository(db)
	blockRepo := repositories.NewCalendarBlockRepository(db)

	// Initialize services
	uploadService := services.NewUploadService(fileStorage)
	bookService := services.NewBookService(bookRepo, fileStorage, dashboardCache, logger.Logger)
	tagService := services.NewTagService(tagRepo)
	courseService := services.NewCourseService(courseRepo, lessonRepo, tagRepo, bookRepo, fileStorage, dashboardCache, logger.Logger)
	lessonService := services.NewLessonService(lessonRepo, progressRepo, streakRepo, monthlyRepo, dashboardCache)
	libraryService := services.NewLibraryService(courseRepo, bookRepo, lessonRepo, tagRepo)
	calendarService := services.NewCalendarService(blockRepo, progressRepo, streakRepo)
	progressService := services.NewProgressService(courseRepo, bookRepo, lessonRepo, tagRepo, progressRepo, streakRepo, monthlyRepo, dashboardCache)

	// Initialize handlers
	booksHandler := handlers.NewBooksHandler(bookService, logger.Logger)
	tagsHandler := handlers.NewTagsHandler(tagService, logger.Logger)
	coursesHandler := handlers.NewCoursesHandler(courseService, logger.Logger)
	lessonsHandler := handlers.NewLessonsHandler(lessonService, logger.Logger)
	libraryHandler := handlers.NewLibraryHandler(libraryService, logger.Logger)
	calendarHandler := handlers.NewCalendarHandler(calendarService, logger.Logger)
	progressHandler := handlers.NewProgressHandler(progressService, logger.Logger)
	uploadsHandler := handlers.NewUploadsHandler(uploadService, mediaFiles, logger.Logger)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middlewares.RequestIDMiddleware)
	r.Use(middlewares.LoggerMiddleware(logger.Logger))
	r.Use(middlewares.RecoveryMiddleware(logger.Logger))
	r.Use(middlewares.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(cfg.RateLimit, time.Minute))
	r.Use(middlewares.RequestSizeLimitMiddleware(cfg.Server.MaxUploadSize))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Scope router to /api/v1
	r.Route("/api/v1", func(r chi.Router) {
		booksHandler.RegisterRoutes(r)
		tagsHandler.RegisterRoutes(r)
		coursesHandler.RegisterRoutes(r)
		lessonsHandler.RegisterRoutes(r)
		libraryHandler.RegisterRoutes(r)
		calendarHandler.RegisterRoutes(r)
		progressHandler.RegisterRoutes(r)
		uploadsHandler.RegisterRoutes(r)
	})

	// Locally stored files are served by the API itself
	uploadsHandler.RegisterMediaRoutes(r)

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  60 * time.Second, // Longer timeout for video uploads
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: "studyshelf_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		// Running from cmd/
		if _, err := os.Stat("../migrations"); err == nil {
			migrationPath = "file://../migrations"
		}
	}

	m, err := migrate.NewWithDatabaseInstance(migrationPath, "mysql", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// setupStorage picks the blob storage driver.
// The returned FileOpener is nil unless files live on local disk.
func setupStorage(cfg *config.Config) (services.FileStorage, handlers.FileOpener, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMinio:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		minioStorage, err := storage.NewMinioStorage(ctx, storage.MinioOptions{
			Endpoint:  cfg.Storage.Minio.Endpoint,
			AccessKey: cfg.Storage.Minio.AccessKey,
			SecretKey: cfg.Storage.Minio.SecretKey,
			Bucket:    cfg.Storage.Minio.Bucket,
			UseSSL:    cfg.Storage.Minio.UseSSL,
			PublicURL: cfg.Storage.Minio.PublicURL,
		})
		if err != nil {
			return nil, nil, err
		}
		logger.Logger.Info("Using MinIO storage",
			zap.String("endpoint", cfg.Storage.Minio.Endpoint),
			zap.String("bucket", cfg.Storage.Minio.Bucket))
		return minioStorage, nil, nil
	default:
		localStorage, err := storage.NewLocalStorage(cfg.Storage.MediaBasePath, cfg.Storage.MediaBaseURL)
		if err != nil {
			return nil, nil, err
		}
		logger.Logger.Info("Using local storage", zap.String("path", cfg.Storage.MediaBasePath))
		return localStorage, localStorage, nil
	}
}

// setupCache connects to Redis when configured.
// Without Redis, or when it cannot be reached, the dashboard is computed on every request.
func setupCache(cfg *config.Config) (services.DashboardCache, *redis.Client) {
	if cfg.Redis.Host == "" {
		logger.Logger.Info("Redis not configured, dashboard cache disabled")
		return cache.NewNopDashboardCache(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Logger.Warn("Redis unreachable, dashboard cache disabled", zap.Error(err), zap.String("addr", cfg.RedisAddr()))
		client.Close()
		return cache.NewNopDashboardCache(), nil
	}

	logger.Logger.Info("Dashboard cache enabled", zap.String("addr", cfg.RedisAddr()), zap.Duration("ttl", cfg.Redis.TTL))
	return cache.NewRedisDashboardCache(client, cfg.Redis.TTL, logger.Logger), client
}
