// Package config reads service configuration from the environment, with an
// optional .env file for local runs.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr    string
	StreamAddr  string
	SaveBackend string // postgres | file | memory
	PostgresDSN string
	DataDir     string
}

// Load reads configuration from environment variables with sensible
// defaults. A missing .env file is not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr:    getEnv("HORSEKEEP_HTTP_ADDR", ":8080"),
		StreamAddr:  getEnv("HORSEKEEP_STREAM_ADDR", ":8081"),
		SaveBackend: getEnv("HORSEKEEP_SAVE_BACKEND", "file"),
		PostgresDSN: getEnv("HORSEKEEP_DB_DSN", ""),
		DataDir:     getEnv("HORSEKEEP_DATA_DIR", "./data"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
