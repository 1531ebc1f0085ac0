package config

import (
	"log"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	// APIBaseURL is the root of the organization-management REST API.
	APIBaseURL string
	// AuthToken is the bearer credential attached to every outbound request
	// when present. Issuance and storage belong to the auth layer.
	AuthToken string
	// RequestTimeout bounds each outbound HTTP call.
	RequestTimeout time.Duration
	IsProduction   bool
	LogLevel       slog.Level
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("API_BASE_URL", "http://localhost:4000")
	viper.SetDefault("AUTH_TOKEN", "")
	viper.SetDefault("REQUEST_TIMEOUT", "15s")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.APIBaseURL = viper.GetString("API_BASE_URL")
	cfg.AuthToken = viper.GetString("AUTH_TOKEN")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	timeoutStr := viper.GetString("REQUEST_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 15 * time.Second
		if timeoutStr != "" {
			log.Printf("Warning: Invalid value for REQUEST_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
		}
	}
	cfg.RequestTimeout = timeout

	switch viper.GetString("LOG_LEVEL") {
	case "debug":
		cfg.LogLevel = slog.LevelDebug
	case "warn":
		cfg.LogLevel = slog.LevelWarn
	case "error":
		cfg.LogLevel = slog.LevelError
	default:
		cfg.LogLevel = slog.LevelInfo
	}

	return cfg, nil
}
