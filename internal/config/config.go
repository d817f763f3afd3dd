package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env             string
	ListenAddr      string
	DatabaseURL     string
	DBMaxConns      int
	MigrateOnStart  bool
	RiskConfigPath  string
	OCRURL          string
	OCRLanguage     string
	OCRTimeout      time.Duration
	OCRMaxBytes     int64
	MaxConnections  int
	BacklogInterval time.Duration
	LogLevel        string
}

// Development reports whether the service may fall back to in-memory storage.
func (c Config) Development() bool {
	return c.Env == "development"
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads the environment, after applying an optional .env file. The
// file never overrides variables that are already set.
func Load() (Config, error) {
	return LoadFile(".env")
}

func LoadFile(dotenv string) (Config, error) {
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", dotenv, err)
		}
	}
	cfg := Config{
		Env:             getenv("APP_ENV", "development"),
		ListenAddr:      getenv("LISTEN_ADDR", ":8080"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		DBMaxConns:      getenvInt("DB_MAX_CONNS", 10),
		MigrateOnStart:  getenvBool("MIGRATE_ON_START", false),
		RiskConfigPath:  getenv("RISK_CONFIG_PATH", "config/risk.yaml"),
		OCRURL:          os.Getenv("OCR_URL"),
		OCRLanguage:     getenv("OCR_LANGUAGE", "jpn"),
		OCRTimeout:      time.Duration(getenvInt("OCR_TIMEOUT_SECONDS", 30)) * time.Second,
		OCRMaxBytes:     int64(getenvInt("OCR_MAX_BYTES", 10<<20)),
		MaxConnections:  getenvInt("MAX_CONNECTIONS", 0),
		BacklogInterval: time.Duration(getenvInt("BACKLOG_INTERVAL_SECONDS", 30)) * time.Second,
		LogLevel:        getenv("LOG_LEVEL", "info"),
	}
	if cfg.DatabaseURL == "" {
		// Not fatal for early local runs; warn via error value so callers can decide.
		return cfg, fmt.Errorf("DATABASE_URL not set")
	}
	return cfg, nil
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if out, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return out
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if out, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return out
		}
	}
	return def
}
