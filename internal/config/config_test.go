package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"APP_ENV", "LISTEN_ADDR", "DATABASE_URL", "DB_MAX_CONNS", "MIGRATE_ON_START",
	"RISK_CONFIG_PATH", "OCR_URL", "OCR_LANGUAGE", "OCR_TIMEOUT_SECONDS", "OCR_MAX_BYTES",
	"MAX_CONNECTIONS", "BACKLOG_INTERVAL_SECONDS", "LOG_LEVEL",
}

// clearEnv blanks every key for the test; getenv treats empty as unset.
func clearEnv(t *testing.T) {
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadFile("")
	require.Error(t, err, "missing DATABASE_URL is reported")
	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.Development())
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, 10, cfg.DBMaxConns)
	assert.False(t, cfg.MigrateOnStart)
	assert.Equal(t, 30*time.Second, cfg.OCRTimeout)
	assert.Equal(t, int64(10<<20), cfg.OCRMaxBytes)
	assert.Equal(t, 30*time.Second, cfg.BacklogInterval)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://localhost/blacklist")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("MIGRATE_ON_START", "true")
	t.Setenv("OCR_URL", "http://ocr:9000/extract")
	t.Setenv("OCR_TIMEOUT_SECONDS", "5")
	t.Setenv("MAX_CONNECTIONS", "200")
	t.Setenv("BACKLOG_INTERVAL_SECONDS", "not-a-number")

	cfg, err := LoadFile("")
	require.NoError(t, err)
	assert.False(t, cfg.Development())
	assert.Equal(t, 25, cfg.DBMaxConns)
	assert.True(t, cfg.MigrateOnStart)
	assert.Equal(t, "http://ocr:9000/extract", cfg.OCRURL)
	assert.Equal(t, 5*time.Second, cfg.OCRTimeout)
	assert.Equal(t, 200, cfg.MaxConnections)
	assert.Equal(t, 30*time.Second, cfg.BacklogInterval, "malformed values fall back")
}

func TestLoadDotenvDoesNotOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("LISTEN_ADDR", ":9999")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DATABASE_URL=postgres://db/x\nLISTEN_ADDR=:7000\n"), 0o600))
	// godotenv only fills variables that are absent, not merely empty
	require.NoError(t, os.Unsetenv("DATABASE_URL"))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://db/x", cfg.DatabaseURL)
	assert.Equal(t, ":9999", cfg.ListenAddr)
}

func TestLoadMissingDotenvIsFine(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://db/x")
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}
