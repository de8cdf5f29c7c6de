package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	LogLevel       string
	LogFormat      string
	MaxUploadMB    int
	AnalyzeWorkers int
	MaxConcurrent  int
	UploadRPS      float64
	UploadBurst    int
}

func Load() (*Config, error) {
	// .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:    getEnv("APP_ENV", "development"),
		Port:      getEnv("PORT", "8080"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}

	var err error
	if cfg.MaxUploadMB, err = getEnvInt("MAX_UPLOAD_MB", 32); err != nil {
		return nil, err
	}
	if cfg.AnalyzeWorkers, err = getEnvInt("ANALYZE_WORKERS", 0); err != nil {
		return nil, err
	}
	if cfg.MaxConcurrent, err = getEnvInt("MAX_CONCURRENT_ANALYSES", 4); err != nil {
		return nil, err
	}
	if cfg.UploadRPS, err = getEnvFloat("UPLOAD_RATE_RPS", 1); err != nil {
		return nil, err
	}
	if cfg.UploadBurst, err = getEnvInt("UPLOAD_RATE_BURST", 5); err != nil {
		return nil, err
	}

	if cfg.MaxUploadMB < 1 {
		return nil, fmt.Errorf("MAX_UPLOAD_MB must be at least 1, got %d", cfg.MaxUploadMB)
	}
	if cfg.AnalyzeWorkers < 0 {
		return nil, fmt.Errorf("ANALYZE_WORKERS must not be negative, got %d", cfg.AnalyzeWorkers)
	}
	if cfg.MaxConcurrent < 1 {
		return nil, fmt.Errorf("MAX_CONCURRENT_ANALYSES must be at least 1, got %d", cfg.MaxConcurrent)
	}
	if cfg.UploadRPS <= 0 {
		return nil, fmt.Errorf("UPLOAD_RATE_RPS must be positive, got %v", cfg.UploadRPS)
	}
	if cfg.UploadBurst < 1 {
		return nil, fmt.Errorf("UPLOAD_RATE_BURST must be at least 1, got %d", cfg.UploadBurst)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return f, nil
}
