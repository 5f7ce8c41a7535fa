package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	DBUrl          string
	JWTSecret      string
	TokenTTL       time.Duration
	ServerPort     string
	FrontendOrigin string

	RedisURL string

	S3Bucket        string
	S3Region        string
	S3AccessKeyID   string
	S3SecretKey     string
	S3PublicBaseURL string

	MPAccessToken string
}

func Load() *Config {
	return &Config{
		DBUrl:          mustEnv("DATABASE_URL"),
		JWTSecret:      mustEnv("JWT_SECRET"),
		TokenTTL:       time.Duration(getEnvInt("TOKEN_TTL_HOURS", 168)) * time.Hour,
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		FrontendOrigin: getEnv("FRONTEND_ORIGIN", ""),

		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379/0"),

		S3Bucket:        getEnv("S3_BUCKET", ""),
		S3Region:        getEnv("S3_REGION", "us-east-1"),
		S3AccessKeyID:   getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretKey:     getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3PublicBaseURL: getEnv("S3_PUBLIC_BASE_URL", ""),

		MPAccessToken: getEnv("MP_ACCESS_TOKEN", ""),
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
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// mustEnv is for values with no safe fallback (connection strings, secrets).
func mustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("missing required environment variable %s", key)
	}
	return v
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
