package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort   string
	MySQLDSN     string
	RedisAddr    string
	RedisDB      int
	RedisPass    string
	CacheEnabled bool
	CacheTTL     time.Duration
	BcryptCost   int
	LogLevel     string
	LogFormat    string
	SwaggerHost  string
	ResetDB      bool
}

// Load builds Config from environment with sensible defaults. A .env file in the
// working directory is read first when present; real environment variables win.
func Load() *Config {
	_ = godotenv.Load()

	port := getEnv("SERVER_PORT", "8080")
	return &Config{
		ServerPort:   port,
		MySQLDSN:     getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/geometa?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:      getEnvInt("REDIS_DB", 0),
		RedisPass:    os.Getenv("REDIS_PASSWORD"),
		CacheEnabled: getEnvBool("CACHE_ENABLED", true),
		CacheTTL:     getEnvDuration("CACHE_TTL", 5*time.Minute),
		BcryptCost:   getEnvInt("BCRYPT_COST", 10),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "json"),
		SwaggerHost:  getEnv("SWAGGER_HOST", "localhost:"+port),
		ResetDB:      getEnvBool("RESET_DB", false),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
