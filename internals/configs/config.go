package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting read from the environment.
type Config struct {
	Port string

	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	DBMaxOpenConns int
	DBMaxIdleConns int

	JWTSecret        string
	JWTRefreshSecret string
	AccessTokenTTL   time.Duration
	RefreshTokenTTL  time.Duration

	BlacklistDriver      string // db | redis
	BlacklistCleanupCron string
	RedisAddr            string
	RedisPassword        string
	RedisDB              int

	CorsAllowOrigins        string
	// per-IP requests per minute; 0 disables
	RateLimitPerMinute      int
	LoginRateLimitPerMinute int
	RequestTimeout          time.Duration

	LogLevel  string
	LogFormat string
}

// =======================
// ENV LOADER
// =======================

// LoadEnv reads .env (outside production) and builds the Config.
// The returned note tells the caller where the values came from so it can be
// logged once a logger exists.
func LoadEnv() (*Config, string) {
	note := "using system environment"
	if GetEnv("RAILWAY_ENVIRONMENT") == "" && GetEnv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			note = ".env not found, using system environment"
		} else {
			note = ".env loaded"
		}
	}

	cfg := &Config{
		Port: GetEnv("PORT", "8000"),

		DBHost:         GetEnv("DB_HOST", "localhost"),
		DBPort:         GetEnv("DB_PORT", "5432"),
		DBUser:         GetEnv("DB_USER", "postgres"),
		DBPassword:     GetEnv("DB_PASSWORD"),
		DBName:         GetEnv("DB_NAME", "autismcare"),
		DBSSLMode:      GetEnv("DB_SSLMODE", "disable"),
		DBMaxOpenConns: GetEnvInt("DB_MAX_OPEN_CONNS", 20),
		DBMaxIdleConns: GetEnvInt("DB_MAX_IDLE_CONNS", 10),

		JWTSecret:        GetEnv("JWT_SECRET"),
		JWTRefreshSecret: GetEnv("JWT_REFRESH_SECRET"),
		AccessTokenTTL:   GetEnvDuration("ACCESS_TOKEN_TTL", 15*time.Minute),
		RefreshTokenTTL:  GetEnvDuration("REFRESH_TOKEN_TTL", 7*24*time.Hour),

		BlacklistDriver:      strings.ToLower(GetEnv("BLACKLIST_DRIVER", "db")),
		BlacklistCleanupCron: GetEnv("BLACKLIST_CLEANUP_CRON", "@every 1h"),
		RedisAddr:            GetEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:        GetEnv("REDIS_PASSWORD"),
		RedisDB:              GetEnvInt("REDIS_DB", 0),

		CorsAllowOrigins:        GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173"),
		RateLimitPerMinute:      GetEnvInt("RATE_LIMIT_PER_MINUTE", 100),
		LoginRateLimitPerMinute: GetEnvInt("LOGIN_RATE_LIMIT_PER_MINUTE", 5),
		RequestTimeout:          GetEnvDuration("REQUEST_TIMEOUT", 5*time.Second),

		LogLevel:  GetEnv("LOG_LEVEL", "info"),
		LogFormat: GetEnv("LOG_FORMAT", "json"),
	}
	return cfg, note
}

// ValidateServe checks the settings the HTTP server cannot run without.
func (c *Config) ValidateServe() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET is not set")
	}
	if strings.TrimSpace(c.JWTRefreshSecret) == "" {
		return fmt.Errorf("JWT_REFRESH_SECRET is not set")
	}
	switch c.BlacklistDriver {
	case "db", "redis":
	default:
		return fmt.Errorf("BLACKLIST_DRIVER must be db or redis, got %q", c.BlacklistDriver)
	}
	return nil
}

// DSN builds the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=autismcare",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// GetEnvDuration accepts Go durations ("15m") or plain seconds ("900").
func GetEnvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	return def
}
