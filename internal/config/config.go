package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultDataDir       = "data"
	defaultSessionSecret = "change-me-session-secret"
	defaultSessionTTL    = "24h"
	defaultLogLevel      = "info"
)

type Config struct {
	// DataDir is the directory holding the flat data files.
	DataDir string

	SessionSecret string
	SessionTTL    time.Duration

	// LogFile, when set, sends logs to a size-rotated file instead of stderr.
	LogFile  string
	LogLevel string
}

func Load() (*Config, error) {
	cfg := &Config{
		DataDir:       getEnv("DATA_DIR", defaultDataDir),
		SessionSecret: strings.TrimSpace(getEnv("SESSION_SECRET", defaultSessionSecret)),
		LogFile:       strings.TrimSpace(os.Getenv("LOG_FILE")),
		LogLevel:      strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
	}

	ttl, err := parseDurationEnv("SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return nil, err
	}
	cfg.SessionTTL = ttl

	return cfg, nil
}

// NewLogger builds the shared logger according to the config. With LogFile
// set, output goes through lumberjack rotation; otherwise stderr.
func (c *Config) NewLogger() *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if c.LogFile != "" {
		var out io.Writer = &lumberjack.Logger{
			Filename:   c.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		log.SetOutput(out)
	}

	return log
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(key, def string) (time.Duration, error) {
	raw := getEnv(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s=%q: %w", key, raw, err)
	}
	return d, nil
}
