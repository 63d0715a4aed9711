package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	LogLevel         string
	JWTSecret        string
	SessionTTL       time.Duration
	LockoutThreshold int
	LockoutDuration  time.Duration
	ResetTokenTTL    time.Duration
	RateLimit        float64
	RateBurst        int
}

func LoadConfig() Config {
	err := godotenv.Load()
	if err != nil {
		log.Println(".env file not found, using defaults")
	}

	return Config{
		Port:             getEnv("PORT", "3000"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		JWTSecret:        getEnv("JWT_SECRET", "default-secret-key-change-in-production"),
		SessionTTL:       getDuration("SESSION_TTL", 24*time.Hour),
		LockoutThreshold: getInt("LOCKOUT_THRESHOLD", 3),
		LockoutDuration:  getDuration("LOCKOUT_DURATION", 15*time.Minute),
		ResetTokenTTL:    getDuration("RESET_TOKEN_TTL", 10*time.Minute),
		RateLimit:        getFloat("RATE_LIMIT", 10),
		RateBurst:        getInt("RATE_BURST", 20),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
