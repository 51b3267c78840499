// Package config loads daemon configuration from the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds calcd runtime settings.
type Config struct {
	Addr      string // listen address
	Home      string // data directory holding history.json
	LogLevel  string
	LogPretty bool
	Speech    bool // attempt PlayHT speech when credentials are present
}

// Load reads configuration from environment variables, honouring a local
// .env file if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	home := getEnv("CALCD_HOME", "")
	if home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		home = filepath.Join(dir, ".wordcalc")
	}

	return &Config{
		Addr:      getEnv("CALCD_ADDR", ":8080"),
		Home:      home,
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogPretty: getEnvAsBool("LOG_PRETTY", false),
		Speech:    getEnvAsBool("CALCD_SPEECH", false),
	}, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
