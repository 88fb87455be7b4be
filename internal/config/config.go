package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port           string
	LogLevel       string
	AllowedOrigins []string

	MongoURI string
	MongoDB  string

	RedisAddr     string
	RedisPassword string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	// Identity provider used for the login handshake.
	IdentityEndpoint string
	IdentityTimeout  time.Duration

	// Fixed-window rate limit for POST /api/auth/session.
	LoginRateLimit  int
	LoginRateWindow time.Duration
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly.
	godotenv.Load()

	return &Config{
		Port:           getenv("PORT", "8080"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		AllowedOrigins: []string{getenv("ALLOWED_ORIGINS", "*")},

		MongoURI: getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  getenv("MONGO_DB", "linkandlearnlabs"),

		RedisAddr:     getenv("REDIS_ADDR", "redis:6379"),
		RedisPassword: getenv("REDIS_PASSWORD", ""),

		MinioEndpoint:  getenv("MINIO_ENDPOINT", "minio:9000"),
		MinioAccessKey: getenv("MINIO_ACCESS_KEY", ""),
		MinioSecretKey: getenv("MINIO_SECRET_KEY", ""),
		MinioBucket:    getenv("MINIO_BUCKET", "build-images"),
		MinioUseSSL:    getenv("MINIO_USE_SSL", "false") == "true",

		IdentityEndpoint: getenv("IDENTITY_ENDPOINT", "https://demobackend.emergentagent.com/auth/v1/env/oauth/session-data"),
		IdentityTimeout:  10 * time.Second,

		LoginRateLimit:  getint("LOGIN_RATE_LIMIT", 30),
		LoginRateWindow: time.Minute,
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
