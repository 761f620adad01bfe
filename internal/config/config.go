package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for our application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Logger    LoggerConfig
	API       APIConfig
	Session   SessionConfig
	Upload    UploadConfig
	CORS      CORSConfig
	Retention RetentionConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port    string
	GinMode string
}

// DatabaseConfig holds the submission audit database configuration
type DatabaseConfig struct {
	Enabled  bool
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level  string
	Format string
}

// APIConfig holds the remote bills API configuration
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig holds session token configuration
type SessionConfig struct {
	JWTSecret  string
	CookieName string
}

// UploadConfig holds receipt upload limits
type UploadConfig struct {
	MaxBytes int64
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// RetentionConfig holds the audit log retention job configuration
type RetentionConfig struct {
	CronExpression string
	Days           int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		Database: DatabaseConfig{
			Enabled:  getEnvAsBool("DB_ENABLED", false),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "billed"),
			Password: getEnv("DB_PASSWORD", "billed"),
			DBName:   getEnv("DB_NAME", "billed"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "debug"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		API: APIConfig{
			BaseURL: getEnv("API_BASE_URL", "http://localhost:5678"),
			Timeout: time.Duration(getEnvAsInt("API_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Session: SessionConfig{
			JWTSecret:  getEnv("JWT_SECRET", "your-secret-key"),
			CookieName: getEnv("SESSION_COOKIE", "jwt"),
		},
		Upload: UploadConfig{
			MaxBytes: int64(getEnvAsInt("UPLOAD_MAX_MB", 10)) << 20,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:8080,http://127.0.0.1:8080")),
		},
		Retention: RetentionConfig{
			CronExpression: getEnv("RETENTION_CRON_EXPRESSION", "0 0 3 * * *"),
			Days:           getEnvAsInt("RETENTION_DAYS", 90),
		},
	}

	if config.API.BaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL must not be empty")
	}
	if config.Upload.MaxBytes <= 0 {
		return nil, fmt.Errorf("UPLOAD_MAX_MB must be positive")
	}

	return config, nil
}

// GetDSN returns PostgreSQL connection string
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvAsInt gets an environment variable as integer with a fallback value
func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvAsBool gets an environment variable as bool with a fallback value
func getEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
