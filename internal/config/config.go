package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	MySQLDSN   string
	RedisAddr  string
	RedisDB    int
	RedisPass  string

	// JWTSecret signs access tokens. Loaded once at startup and treated as
	// immutable for the process lifetime; rotating it invalidates every
	// outstanding token.
	JWTSecret      string
	AccessTokenTTL time.Duration

	// CookieName is the HTTP-only cookie carrying the access token for
	// browser clients. Max age is deployment configuration, not token TTL.
	CookieName   string
	CookieMaxAge int

	FrontendURL     string
	ResendAPIKey    string
	ResendFromEmail string
	SwaggerHost     string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		MySQLDSN:        getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/lagtalk?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		RedisPass:       os.Getenv("REDIS_PASSWORD"),
		JWTSecret:       getEnv("JWT_SECRET", "change-me"),
		AccessTokenTTL:  time.Duration(getEnvInt("ACCESS_TOKEN_TTL_MINUTES", 300)) * time.Minute,
		CookieName:      getEnv("ACCESS_TOKEN_COOKIE", "access_token"),
		CookieMaxAge:    getEnvInt("ACCESS_TOKEN_COOKIE_MAX_AGE", 18000),
		FrontendURL:     getEnv("FRONTEND_URL", "http://localhost:3000"),
		ResendAPIKey:    os.Getenv("RESEND_API_KEY"),
		ResendFromEmail: getEnv("RESEND_FROM_EMAIL", "noreply@lagtalk.app"),
		SwaggerHost:     os.Getenv("SWAGGER_HOST"),
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
