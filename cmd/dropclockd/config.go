package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dropclock/dropclock/internal/models"
)

// Config holds everything the daemon reads from the environment.
type Config struct {
	Port           string
	ViewerTimezone string
	CatalogPath    string
	LogLevel       string
	ShutdownGrace  time.Duration
}

func loadConfig() Config {
	return Config{
		Port:           getEnv("PORT", "8080"),
		ViewerTimezone: getEnv("DROPCLOCK_TZ", time.Local.String()),
		CatalogPath:    getEnv("DROPCLOCK_CATALOG", ""),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		ShutdownGrace:  time.Duration(getEnvAsInt("SHUTDOWN_GRACE_SECONDS", 10)) * time.Second,
	}
}

// loadCatalogFile reads a YAML event list that replaces the built-in
// catalog. Used by streamers who maintain their own schedule.
func loadCatalogFile(path string) ([]models.TargetEvent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var events []models.TargetEvent
	if err := yaml.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no events", path)
	}
	return events, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
