package app

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/taskboard/pkg/httpx"
)

type Config struct {
	DatabaseURL    string   // Required: store connection string, the scheme selects the driver
	JWTSecret      string   // Required: HS256 signing secret
	AllowedOrigins []string // Required: CORS allow-list parsed from FRONTEND_URL
	Port           int      // Required: HTTP server port

	JWTIssuer           string        // Optional: iss claim (default: taskboard)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
	RateLimits          httpx.RateLimits
}

var (
	ErrMissingDatabaseURL = errors.New("DATABASE_URL is required")
	ErrMissingJWTSecret   = errors.New("JWT_SECRET is required")
	ErrMissingFrontendURL = errors.New("FRONTEND_URL is required")
	ErrInvalidPort        = errors.New("PORT must be a number between 1 and 65535")
)

func LoadConfig() Config {
	return Config{
		DatabaseURL:         getEnvOrDefault("DATABASE_URL", os.Getenv("MONGO_URI")),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		AllowedOrigins:      splitList(os.Getenv("FRONTEND_URL")),
		Port:                getEnvIntOrDefault("PORT", 0),
		JWTIssuer:           getEnvOrDefault("JWT_ISSUER", "taskboard"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		RateLimits:          httpx.RateLimitsFromEnv(),
	}
}

// Validate reports every missing or malformed required setting at once.
func (c Config) Validate() error {
	var errs []error
	if err := c.ValidateStore(); err != nil {
		errs = append(errs, err)
	}
	if c.JWTSecret == "" {
		errs = append(errs, ErrMissingJWTSecret)
	}
	if len(c.AllowedOrigins) == 0 {
		errs = append(errs, ErrMissingFrontendURL)
	}
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, ErrInvalidPort)
	}
	return errors.Join(errs...)
}

// ValidateStore checks only what is needed to open the store.
func (c Config) ValidateStore() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return ErrMissingDatabaseURL
	}
	return nil
}

func splitList(value string) []string {
	var out []string
	for part := range strings.SplitSeq(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds.
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
