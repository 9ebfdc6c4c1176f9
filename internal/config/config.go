package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the process configuration read from the environment
type Config struct {
	Env  string
	Port string

	APIBaseURL string
	APITimeout time.Duration

	SessionSecret string

	RedisURL       string
	CourseCacheTTL time.Duration

	DatabaseURL string

	PaymentMethodsFile string

	SupportURL      string
	SupportWhatsapp string

	MaxReceiptBytes int64
}

// IsProduction reports whether cookies must be marked secure
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads .env (if present) and the environment
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	cfg := Config{
		Env:                getEnv("ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		APIBaseURL:         os.Getenv("API_BASE_URL"),
		SessionSecret:      os.Getenv("SESSION_SECRET"),
		RedisURL:           os.Getenv("REDIS_URL"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		PaymentMethodsFile: os.Getenv("PAYMENT_METHODS_FILE"),
		SupportURL:         getEnv("SUPPORT_URL", "https://t.me/SOPORTE"),
		SupportWhatsapp:    os.Getenv("SUPPORT_WHATSAPP"),
	}

	var err error
	if cfg.APITimeout, err = getDuration("API_TIMEOUT", 15*time.Second); err != nil {
		return cfg, err
	}
	if cfg.CourseCacheTTL, err = getDuration("COURSE_CACHE_TTL", 5*time.Minute); err != nil {
		return cfg, err
	}
	if cfg.MaxReceiptBytes, err = getInt64("MAX_RECEIPT_BYTES", 10<<20); err != nil {
		return cfg, err
	}

	if cfg.APIBaseURL == "" {
		return cfg, fmt.Errorf("API_BASE_URL is not set")
	}
	if len(cfg.SessionSecret) < 32 {
		return cfg, fmt.Errorf("SESSION_SECRET must be at least 32 bytes")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return n, nil
}
