// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/charlespers/boardroom/internal/utils"
)

// Config holds application configuration
type Config struct {
	StaticDir      string // Directory holding the pre-built frontend (always absolute)
	BoardName      string // Display name of the demo board
	LogLevel       string
	Port           int
	DevMode        bool
	AllowedOrigins []string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	// The static directory is the build output of the frontend. It is
	// resolved to an absolute path here; whether it actually exists is
	// checked by the server at startup, which fails fast if it is missing.
	staticDir := getEnv("STATIC_DIR", "dist")
	absStaticDir, err := filepath.Abs(staticDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve static directory path: %w", err)
	}

	origins := utils.ParseCSV(getEnv("ALLOWED_ORIGINS", ""))
	if origins == nil {
		origins = []string{"*"}
	}

	cfg := &Config{
		StaticDir:      absStaticDir,
		BoardName:      getEnv("BOARD_NAME", "demo-board"),
		Port:           getEnvAsInt("PORT", 3000),
		DevMode:        getEnvAsBool("DEV_MODE", false),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: origins,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
