package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

type Config struct {
	Port                  string
	StorageDriver         string
	DatabaseURL           string
	SQLitePath            string
	MaxUploadBytes        int
	MaxConcurrentDecodes  int
	HistoryLimit          int
	StoredMissingKeywords int
	ExtraStopwords        []string
	CORSOrigins           string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:                  getEnv("PORT", "5000"),
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		SQLitePath:            getEnv("SQLITE_PATH", "checks.db"),
		MaxUploadBytes:        getEnvInt("MAX_UPLOAD_BYTES", 15<<20),
		MaxConcurrentDecodes:  getEnvInt("MAX_CONCURRENT_DECODES", 4),
		HistoryLimit:          getEnvInt("HISTORY_LIMIT", 10),
		StoredMissingKeywords: getEnvInt("STORED_MISSING_KEYWORDS", 15),
		ExtraStopwords:        getEnvList("EXTRA_STOPWORDS"),
		CORSOrigins:           getEnv("CORS_ORIGINS", "*"),
	}
	cfg.StorageDriver = strings.ToLower(getEnv("STORAGE_DRIVER", defaultDriver(cfg.DatabaseURL)))
	return cfg
}

func defaultDriver(databaseURL string) string {
	if databaseURL != "" {
		return DriverPostgres
	}
	return DriverMemory
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func getEnvList(key string) []string {
	var out []string
	for _, p := range strings.Split(os.Getenv(key), ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
