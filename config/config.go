package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Data source
	SpreadsheetID string
	ReleaseSheet  string
	CoverageSheet string
	XLSXPath      string
	SnapshotDB    string
	FetchTimeout  time.Duration
	FetchRetries  int
	CacheTTL      time.Duration

	// Matching
	MatchWindowDays int
	MatchMode       string

	// Server
	Host     string
	Port     string
	LogLevel string
	GinMode  string
}

func Load() *Config {
	return &Config{
		SpreadsheetID:   getEnv("SPREADSHEET_ID", ""),
		ReleaseSheet:    getEnv("RELEASE_SHEET", "DATASET SP"),
		CoverageSheet:   getEnv("COVERAGE_SHEET", "DATASET BERITA"),
		XLSXPath:        getEnv("XLSX_PATH", ""),
		SnapshotDB:      getEnv("SNAPSHOT_DB", "snapshots.db"),
		FetchTimeout:    getEnvAsDuration("FETCH_TIMEOUT", 15*time.Second),
		FetchRetries:    getEnvAsInt("FETCH_RETRIES", 3),
		CacheTTL:        getEnvAsDuration("CACHE_TTL", 10*time.Minute),
		MatchWindowDays: getEnvAsInt("MATCH_WINDOW_DAYS", 3),
		MatchMode:       getEnv("MATCH_MODE", "auto"),
		Host:            getEnv("HOST", "0.0.0.0"),
		Port:            getEnv("PORT", "8090"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		GinMode:         getEnv("GIN_MODE", "release"),
	}
}

func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
