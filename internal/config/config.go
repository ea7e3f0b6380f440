package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	AI     AIConfig
	Export ExportConfig
}

type ServerConfig struct {
	Port string
}

type AIConfig struct {
	ServiceURL string
	Agent      string
	// Timeout of zero leaves summary requests unbounded.
	Timeout time.Duration
}

type ExportConfig struct {
	ChromePath     string
	DatabaseURL    string
	RenderAttempts int
}

// Load reads .env (when present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}
	return FromEnv()
}

// FromEnv builds the configuration from environment variables only.
func FromEnv() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
		},
		AI: AIConfig{
			ServiceURL: getEnv("AI_SERVICE_URL", "http://ai-service:8000"),
			Agent:      getEnv("AI_AGENT", "auto"),
			Timeout:    getEnvAsDuration("AI_TIMEOUT", 0),
		},
		Export: ExportConfig{
			ChromePath:     getEnv("CHROME_PATH", ""),
			DatabaseURL:    getEnv("JOBS_DATABASE_URL", ""),
			RenderAttempts: getEnvAsInt("PDF_RENDER_ATTEMPTS", 3),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			return d
		}
	}
	return defaultValue
}
