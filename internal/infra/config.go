package infra

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Store drivers selected from the DATABASE_URL scheme.
const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
)

var defaultAllowedOrigins = []string{
	"https://aidforpaws.vercel.app",
	"http://localhost:5173",
	"http://localhost:3000",
}

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv                      string
	Port                        string
	DatabaseURL                 string
	MongoDatabase               string
	JWTSecret                   string
	AdminUsername               string
	AdminPassword               string
	AdminPasswordHash           string
	AdminTokenTTL               time.Duration
	RazorpayKeyID               string
	RazorpayKeySecret           string
	RazorpayBaseURL             string
	PaymentCurrency             string
	PaymentTimeout              time.Duration
	CurrencyLocale              string
	AllowedOrigins              []string
	GeoIPDBPath                 string
	DirectDonationsRequireAdmin bool
	HTTPReadTimeout             time.Duration
	HTTPWriteTimeout            time.Duration
	HTTPIdleTimeout             time.Duration
	RateLimitPerMin             int
	AuditInterval               time.Duration
	TrustedProxies              []string
}

// LoadStoreConfig loads only the settings needed to reach the store. Processes
// that never serve HTTP, such as the audit worker, use it instead of LoadConfig.
func LoadStoreConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:        getEnv("APP_ENV", "production"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		MongoDatabase: getEnv("MONGO_DATABASE", "aidforpaws"),
		AuditInterval: time.Minute * time.Duration(getEnvInt("AUDIT_INTERVAL_MINUTES", 60)),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if _, err := cfg.StoreDriver(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg, err := LoadStoreConfig()
	if err != nil {
		return nil, err
	}

	cfg.Port = getEnv("PORT", "8000")
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	cfg.AdminUsername = getEnv("ADMIN_USERNAME", "admin")
	cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	cfg.AdminPasswordHash = os.Getenv("ADMIN_PASSWORD_HASH")
	cfg.AdminTokenTTL = time.Hour * time.Duration(getEnvInt("ADMIN_TOKEN_TTL_HOURS", 24))
	cfg.RazorpayKeyID = os.Getenv("RAZORPAY_KEY_ID")
	cfg.RazorpayKeySecret = os.Getenv("RAZORPAY_KEY_SECRET")
	cfg.RazorpayBaseURL = getEnv("RAZORPAY_BASE_URL", "https://api.razorpay.com/v1")
	cfg.PaymentCurrency = strings.ToUpper(getEnv("PAYMENT_CURRENCY", "INR"))
	cfg.PaymentTimeout = time.Second * time.Duration(getEnvInt("PAYMENT_TIMEOUT_SECONDS", 15))
	cfg.CurrencyLocale = getEnv("CURRENCY_LOCALE", "en-IN")
	cfg.AllowedOrigins = getEnvList("CORS_ALLOWED_ORIGINS", defaultAllowedOrigins)
	cfg.GeoIPDBPath = os.Getenv("GEOIP_DB_PATH")
	cfg.DirectDonationsRequireAdmin = getEnvBool("DIRECT_DONATIONS_REQUIRE_ADMIN", false)
	cfg.HTTPReadTimeout = time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15))
	cfg.HTTPWriteTimeout = time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30))
	cfg.HTTPIdleTimeout = time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60))
	cfg.RateLimitPerMin = getEnvInt("RATE_LIMIT_PER_MINUTE", 30)
	cfg.TrustedProxies = getEnvList("TRUSTED_PROXIES", nil)

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH is required")
	}

	if !cfg.IsDevelopment() && (cfg.RazorpayKeyID == "" || cfg.RazorpayKeySecret == "") {
		return nil, fmt.Errorf("RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET are required outside development")
	}

	return cfg, nil
}

// IsDevelopment reports whether the service runs in the development environment.
// APP_ENV defaults to production, so development must be chosen explicitly.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// UsesStubGateway reports whether orders go to the in-process stub gateway.
func (c *Config) UsesStubGateway() bool {
	return c.IsDevelopment() && (c.RazorpayKeyID == "" || c.RazorpayKeySecret == "")
}

// StoreDriver derives the store backend from the DATABASE_URL scheme.
func (c *Config) StoreDriver() (string, error) {
	u, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return "", fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	switch strings.ToLower(u.Scheme) {
	case "postgres", "postgresql":
		return DriverPostgres, nil
	case "mongodb", "mongodb+srv":
		return DriverMongo, nil
	case "memory":
		return DriverMemory, nil
	default:
		return "", fmt.Errorf("DATABASE_URL: unsupported scheme %q", u.Scheme)
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return append([]string(nil), fallback...)
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimRight(strings.TrimSpace(part), "/"); part != "" {
			out = append(out, part)
		}
	}
	return out
}
