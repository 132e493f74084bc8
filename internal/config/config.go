// Package config collects all configuration for the backend from the
// environment. A .env file in the working directory is loaded first if
// present so that local development does not need exported variables.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	GinMode          string // gin mode, defaults to "release"
	LogFormat        string // "human" or "json". Defaults to JSON in release mode
	DBPath           string // path to the sqlite database file
	CORSAllowOrigins string // space separated list of allowed CORS origins
}

// Load reads the configuration from the environment.
func Load() Config {
	// A missing .env file is not an error, the environment
	// might be fully configured already
	_ = godotenv.Load()

	return Config{
		GinMode:          getEnv("GIN_MODE", "release"),
		LogFormat:        os.Getenv("LOG_FORMAT"),
		DBPath:           getEnv("DB_PATH", "data/gargantua.db"),
		CORSAllowOrigins: os.Getenv("CORS_ALLOW_ORIGINS"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}
