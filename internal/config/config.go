package config

import (
	"fmt"
	"os"
)

type Config struct {
	ServerPort string

	// Admin credentials. The password is stored as a bcrypt hash; the
	// default corresponds to "celo2024" and must be replaced in production.
	AdminUsername     string
	AdminPasswordHash string

	SalonTimezone string

	// BookingsFile enables the JSON mirror of the in-memory store when
	// non-empty. DatabaseURL switches the store to Postgres entirely.
	BookingsFile string
	DatabaseURL  string

	// RedisAddr switches the session token store to Redis when non-empty.
	RedisAddr     string
	RedisPassword string

	ResendAPIKey string
	ResendDomain string
	AdminEmail   string
}

func Load() *Config {
	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", "$2a$10$1qAz2wSx3eDc4rFv5tGb5edNcFbPCsxUOVkRx2XC2zUTu0BFIJ5de"),
		SalonTimezone:     getEnv("SALON_TIMEZONE", "Europe/Stockholm"),
		BookingsFile:      getEnv("BOOKINGS_FILE", ""),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		ResendAPIKey:      getEnv("RESEND_API_KEY", ""),
		ResendDomain:      getEnv("RESEND_DOMAIN", "resend.dev"),
		AdminEmail:        getEnv("ADMIN_EMAIL", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
