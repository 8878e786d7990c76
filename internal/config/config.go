package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultStorageKey is the durable record key holding the signed-in user
const DefaultStorageKey = "village_user"

// Config holds application configuration
type Config struct {
	Env           string
	LogLevel      string
	StorageDriver string
	DatabasePath  string
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	StorageKey    string
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:           getEnv("VILLAGE_ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		StorageDriver: getEnv("STORAGE_DRIVER", "sqlite"),
		DatabasePath:  getEnv("DB_PATH", "./village.db"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
		StorageKey:    getEnv("STORAGE_KEY", DefaultStorageKey),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
