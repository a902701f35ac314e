package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"cashflow-api/internal/model"
)

// MinJWTSecretBytes matches the HS256 output size.
const MinJWTSecretBytes = 32

type Config struct {
	ServerPort              string
	ServerReadHeaderTimeout time.Duration
	ServerWriteTimeout      time.Duration
	ServerIdleTimeout       time.Duration
	RequestTimeout          time.Duration

	DatabaseURL string
	DBMaxConns  int32
	DBMinConns  int32

	JWTSecret    string
	JWTAccessTTL time.Duration
	JWTIssuer    string
	JWTAudience  string
	BcryptCost   int

	CORSOrigins      []string
	RateLimitRPM     int
	AuthRateLimitRPM int
	// TrustProxyHeaders takes the client address from X-Forwarded-For or
	// X-Real-IP. Only safe when a proxy in front overwrites those headers.
	TrustProxyHeaders bool

	LogLevel  string
	LogFormat string

	AdminName     string
	AdminEmail    string
	AdminPassword string

	DefaultLocale string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:              getEnv("SERVER_PORT", "8080"),
		ServerReadHeaderTimeout: getDuration("SERVER_READ_HEADER_TIMEOUT", 10*time.Second),
		ServerWriteTimeout:      getDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
		ServerIdleTimeout:       getDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
		RequestTimeout:          getDuration("REQUEST_TIMEOUT", 30*time.Second),
		DatabaseURL:             strings.TrimSpace(os.Getenv("DATABASE_URL")),
		DBMaxConns:              int32(getInt("DB_MAX_CONNS", 10)),
		DBMinConns:              int32(getInt("DB_MIN_CONNS", 2)),
		JWTSecret:               os.Getenv("JWT_SECRET"),
		JWTAccessTTL:            getDuration("JWT_ACCESS_TTL", 8*time.Hour),
		JWTIssuer:               getEnv("JWT_ISSUER", ""),
		JWTAudience:             getEnv("JWT_AUDIENCE", ""),
		BcryptCost:              getInt("BCRYPT_COST", 12),
		CORSOrigins:             splitCSV(getEnv("CORS_ORIGINS", "*")),
		RateLimitRPM:            getInt("RATE_LIMIT_RPM", 100),
		AuthRateLimitRPM:        getInt("AUTH_RATE_LIMIT_RPM", 10),
		TrustProxyHeaders:       getBool("TRUST_PROXY_HEADERS", false),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		LogFormat:               getEnv("LOG_FORMAT", "pretty"),
		AdminName:               getEnv("ADMIN_NAME", "Administrator"),
		AdminEmail:              getEnv("ADMIN_EMAIL", ""),
		AdminPassword:           os.Getenv("ADMIN_PASSWORD"),
		DefaultLocale:           getEnv("DEFAULT_LOCALE", "en"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports the first invalid setting. Every error wraps
// model.ErrConfiguration so callers can abort startup on it.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("%w: JWT_SECRET is required", model.ErrConfiguration)
	}

	if len(strings.TrimSpace(c.JWTSecret)) < MinJWTSecretBytes {
		return fmt.Errorf("%w: JWT_SECRET must be at least %d bytes", model.ErrConfiguration, MinJWTSecretBytes)
	}

	if c.ServerPort == "" {
		return fmt.Errorf("%w: SERVER_PORT cannot be empty", model.ErrConfiguration)
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("%w: DATABASE_URL is required", model.ErrConfiguration)
	}

	if c.DBMaxConns <= 0 || c.DBMinConns < 0 || c.DBMinConns > c.DBMaxConns {
		return fmt.Errorf("%w: DB_MIN_CONNS must be between 0 and DB_MAX_CONNS", model.ErrConfiguration)
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: REQUEST_TIMEOUT must be positive", model.ErrConfiguration)
	}

	if c.JWTAccessTTL < 0 {
		return fmt.Errorf("%w: JWT_ACCESS_TTL cannot be negative", model.ErrConfiguration)
	}

	if (c.AdminEmail == "") != (c.AdminPassword == "") {
		return fmt.Errorf("%w: ADMIN_EMAIL and ADMIN_PASSWORD must be set together", model.ErrConfiguration)
	}

	switch strings.ToLower(c.LogFormat) {
	case "pretty", "text", "json":
	default:
		return fmt.Errorf("%w: LOG_FORMAT must be pretty, text or json", model.ErrConfiguration)
	}

	return nil
}

// SeedsAdmin reports whether an admin account should be ensured at startup.
func (c *Config) SeedsAdmin() bool {
	return c.AdminEmail != "" && c.AdminPassword != ""
}

func getEnv(key string, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}

	return v
}

func getInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return v
}

func getBool(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}

	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	v, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return v
}

func splitCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}

	return out
}
