// Package config loads command-line defaults from the environment and an
// optional .env file.
package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvText     = "RAINBOWGIF_TEXT"
	EnvFontSize = "RAINBOWGIF_FONT_SIZE"
	EnvFontPath = "RAINBOWGIF_FONT_PATH"
	EnvOutput   = "RAINBOWGIF_OUTPUT"
	EnvWorkers  = "RAINBOWGIF_WORKERS"
	EnvLogLevel = "RAINBOWGIF_LOG_LEVEL"
)

type Config struct {
	Text     string
	FontSize int
	FontPath string // empty selects the bundled font
	Output   string
	Workers  int // 0 = GOMAXPROCS
	LogLevel slog.Level
}

// Load reads the given .env files (".env" when none are named) into the
// process environment, then builds a Config from it. Missing files are
// ignored; variables already set in the environment win over the files.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return &Config{
		Text:     getEnv(EnvText, "77.7%"),
		FontSize: getEnvAsInt(EnvFontSize, 128),
		FontPath: getEnv(EnvFontPath, ""),
		Output:   getEnv(EnvOutput, filepath.Join(".", "rainbow_text.gif")),
		Workers:  getEnvAsInt(EnvWorkers, 0),
		LogLevel: getEnvAsLevel(EnvLogLevel, slog.LevelWarn),
	}, nil
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

func getEnvAsLevel(key string, defaultValue slog.Level) slog.Level {
	if value := os.Getenv(key); value != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(value)); err == nil {
			return level
		}
	}
	return defaultValue
}
