// Package config loads service configuration from the environment.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetBoolEnv returns a bool environment variable or a default value.
func GetBoolEnv(key string, defaultVal bool) bool {
	if val, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

// GetDurationEnv returns a duration environment variable or a default value.
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

// Config holds the resolved service configuration. The backend base URL is
// explicit state passed into the networking clients at construction time,
// never read from the environment past startup.
type Config struct {
	Port string

	BackendBaseURL string
	BackendTimeout time.Duration
	PublicBaseURL  string

	SimulatePSP    bool
	SimulatorDelay time.Duration
	LuhnCheck      bool

	JWTSecret string

	Redis    RedisConfig
	CacheTTL time.Duration
}

// RedisConfig holds the Redis connection settings for the link cache.
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
}

// New builds a Config from the environment with development defaults.
func New() *Config {
	return &Config{
		Port: GetEnv("PORT", "3000"),

		BackendBaseURL: GetEnv("BACKEND_BASE_URL", "http://localhost:8080"),
		BackendTimeout: GetDurationEnv("BACKEND_TIMEOUT", 10*time.Second),
		PublicBaseURL:  GetEnv("PUBLIC_BASE_URL", "http://localhost:3000"),

		SimulatePSP:    GetBoolEnv("SIMULATE_PSP", true),
		SimulatorDelay: GetDurationEnv("SIMULATOR_DELAY", 800*time.Millisecond),
		LuhnCheck:      GetBoolEnv("LUHN_CHECK", true),

		JWTSecret: GetEnv("JWT_SECRET", "paylink"),

		Redis: RedisConfig{
			Enabled:  GetBoolEnv("REDIS_ENABLED", true),
			Host:     GetEnv("REDIS_HOST", "localhost"),
			Port:     GetEnv("REDIS_PORT", "6379"),
			Password: GetEnv("REDIS_PASSWORD", ""),
			DB:       GetIntEnv("REDIS_DB", 0),
		},
		CacheTTL: GetDurationEnv("CACHE_TTL", 30*time.Second),
	}
}

// IsProduction checks if the app runs in production mode.
func IsProduction() bool {
	return GetEnv("ENV", "development") == "production"
}
