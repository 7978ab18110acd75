// Package config provides configuration for the application
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers supported by STORAGE_DRIVER
const (
	StorageDriverLocal = "local"
	StorageDriverMinio = "minio"
)

// Config holds all configuration for the application
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Logging   LoggingConfig
	CORS      CORSConfig
	Storage   StorageConfig
	Redis     RedisConfig
	RateLimit int
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port int
	// MaxUploadSize caps request bodies, uploads included
	MaxUploadSize int64
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// StorageConfig holds blob storage settings
type StorageConfig struct {
	Driver        string
	MediaBasePath string
	MediaBaseURL  string
	Minio         MinioConfig
}

// MinioConfig holds MinIO / S3 compatible storage settings
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string
}

// RedisConfig holds Redis connection settings.
// Empty Host disables the dashboard cache.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	TTL      time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// .env is optional, real environment variables take precedence
	_ = godotenv.Load()

	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	dbPortStr, err := requireEnv("DB_PORT")
	if err != nil {
		return nil, err
	}
	if cfg.Database.Port, err = strconv.Atoi(dbPortStr); err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	if cfg.Database.User, err = requireEnv("DB_USER"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.DBName, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// Server configuration
	if cfg.Server.Port, err = getEnvInt("SERVER_PORT", 8080); err != nil {
		return nil, err
	}
	maxUploadMB, err := getEnvInt("MAX_UPLOAD_SIZE_MB", 110)
	if err != nil {
		return nil, err
	}
	cfg.Server.MaxUploadSize = int64(maxUploadMB) << 20

	if cfg.RateLimit, err = getEnvInt("RATE_LIMIT_PER_MINUTE", 100); err != nil {
		return nil, err
	}

	cfg.Logging.Level = getEnv("LOG_LEVEL", "info")
	cfg.CORS.AllowedOrigins = parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))

	// Storage configuration
	cfg.Storage.Driver = strings.ToLower(getEnv("STORAGE_DRIVER", StorageDriverLocal))
	cfg.Storage.MediaBasePath = getEnv("MEDIA_BASE_PATH", "./media")
	cfg.Storage.MediaBaseURL = strings.TrimRight(
		getEnv("MEDIA_BASE_URL", fmt.Sprintf("http://localhost:%d", cfg.Server.Port)), "/")

	switch cfg.Storage.Driver {
	case StorageDriverLocal:
	case StorageDriverMinio:
		if cfg.Storage.Minio.Endpoint, err = requireEnv("MINIO_ENDPOINT"); err != nil {
			return nil, err
		}
		if cfg.Storage.Minio.AccessKey, err = requireEnv("MINIO_ACCESS_KEY"); err != nil {
			return nil, err
		}
		if cfg.Storage.Minio.SecretKey, err = requireEnv("MINIO_SECRET_KEY"); err != nil {
			return nil, err
		}
		cfg.Storage.Minio.Bucket = getEnv("MINIO_BUCKET", "studyshelf")
		cfg.Storage.Minio.UseSSL, err = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))
		if err != nil {
			return nil, fmt.Errorf("invalid MINIO_USE_SSL: %w", err)
		}
		scheme := "http"
		if cfg.Storage.Minio.UseSSL {
			scheme = "https"
		}
		cfg.Storage.Minio.PublicURL = strings.TrimRight(
			getEnv("MINIO_PUBLIC_URL", fmt.Sprintf("%s://%s", scheme, cfg.Storage.Minio.Endpoint)), "/")
	default:
		return nil, fmt.Errorf("invalid STORAGE_DRIVER: %s", cfg.Storage.Driver)
	}

	// Redis configuration (optional, dashboard cache)
	cfg.Redis.Host = os.Getenv("REDIS_HOST")
	if cfg.Redis.Port, err = getEnvInt("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.DB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	cfg.Redis.TTL, err = time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}

	return cfg, nil
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	if c.Database.Host == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&loc=UTC&multiStatements=true&clientFoundRows=true",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
	)
}

// RedisAddr returns the Redis address in host:port form
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return value, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

// parseOrigins splits a comma-separated origin list.
// An empty or blank list allows every origin.
func parseOrigins(raw string) []string {
	origins := make([]string, 0)
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
