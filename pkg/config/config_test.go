package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORAGE_DRIVER", "DATABASE_URL", "SQLITE_PATH", "MAX_UPLOAD_BYTES",
		"MAX_CONCURRENT_DECODES", "HISTORY_LIMIT", "STORED_MISSING_KEYWORDS", "EXTRA_STOPWORDS", "CORS_ORIGINS"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, DriverMemory, cfg.StorageDriver)
	assert.Equal(t, "checks.db", cfg.SQLitePath)
	assert.Equal(t, 15<<20, cfg.MaxUploadBytes)
	assert.Equal(t, 4, cfg.MaxConcurrentDecodes)
	assert.Equal(t, 10, cfg.HistoryLimit)
	assert.Equal(t, 15, cfg.StoredMissingKeywords)
	assert.Empty(t, cfg.ExtraStopwords)
	assert.Equal(t, "*", cfg.CORSOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/db")
	t.Setenv("MAX_CONCURRENT_DECODES", "not-a-number")
	t.Setenv("HISTORY_LIMIT", "25")
	t.Setenv("EXTRA_STOPWORDS", " team, ,work ,")

	cfg := Load()
	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.StorageDriver)
	assert.Equal(t, 4, cfg.MaxConcurrentDecodes)
	assert.Equal(t, 25, cfg.HistoryLimit)
	assert.Equal(t, []string{"team", "work"}, cfg.ExtraStopwords)
}

func TestLoadExplicitDriver(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/db")
	t.Setenv("STORAGE_DRIVER", "SQLite")
	assert.Equal(t, DriverSQLite, Load().StorageDriver)
}
