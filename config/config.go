package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is read once at startup and passed to the components that need
// it; business logic never reads the environment directly.
type Config struct {
	HTTPAddr    string
	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret []byte
	JWTIssuer string
	TokenTTL  time.Duration

	OTPTTL     time.Duration
	BcryptCost int

	ResendAPIKey string
	MailFrom     string
}

// Load parses the environment. A missing JWT secret is an error: the
// process must not serve traffic without a signing key.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %s", err)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	cfg := &Config{
		HTTPAddr:      envOr("HTTP_ADDR", ":8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     envOr("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       envInt("REDIS_DB", 0),
		JWTSecret:     []byte(secret),
		JWTIssuer:     envOr("JWT_ISSUER", "notely"),
		TokenTTL:      envDuration("TOKEN_TTL", time.Hour),
		OTPTTL:        envDuration("OTP_TTL", 10*time.Minute),
		BcryptCost:    envInt("BCRYPT_COST", 10),
		ResendAPIKey:  os.Getenv("RESEND_API_KEY"),
		MailFrom:      os.Getenv("MAIL_FROM"),
	}
	return cfg, nil
}

func envOr(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, value, fallback)
		return fallback
	}
	return parsed
}

func envDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("invalid %s=%q, using %s", key, value, fallback)
		return fallback
	}
	return parsed
}
