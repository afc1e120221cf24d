package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application-level configuration
type Config struct {
	// HTTP
	Port            string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration

	// Database
	DatabaseURL    string
	MaxOpenConns   int
	MaxIdleConns   int
	ConnectRetries int

	// Route geometry store; empty URI disables it
	MongoURI string
	MongoDB  string

	// Auth
	JWTSecret    string
	JWTAlgorithm string

	// Search
	PageSize             int
	AutocompleteLimit    int
	AutocompleteMaxLimit int
}

// Load reads configuration from environment variables or falls back to defaults
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "8083"),
		AllowedOrigins:  getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MaxOpenConns:   getEnvInt("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:   getEnvInt("DB_MAX_IDLE_CONNS", 5),
		ConnectRetries: getEnvInt("DB_CONNECT_RETRIES", 3),

		MongoURI: os.Getenv("MONGO_URI"),
		MongoDB:  getEnv("MONGO_DB", "housing"),

		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTAlgorithm: getEnv("JWT_ALGORITHM", "HS512"),

		PageSize:             getEnvInt("SEARCH_PAGE_SIZE", 6),
		AutocompleteLimit:    getEnvInt("AUTOCOMPLETE_LIMIT", 8),
		AutocompleteMaxLimit: getEnvInt("AUTOCOMPLETE_MAX_LIMIT", 20),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.PageSize <= 0 {
		return nil, fmt.Errorf("SEARCH_PAGE_SIZE must be positive, got %d", cfg.PageSize)
	}
	if cfg.AutocompleteLimit <= 0 || cfg.AutocompleteMaxLimit < cfg.AutocompleteLimit {
		return nil, fmt.Errorf("invalid autocomplete limits: default %d, max %d", cfg.AutocompleteLimit, cfg.AutocompleteMaxLimit)
	}
	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

func getEnvList(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
