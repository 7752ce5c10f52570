package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// TLS/mTLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string
	TLSCAFile   string // CA for verifying client certs (mTLS)

	// OIDC (optional; the app is open when OIDCIssuer is empty)
	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string

	// Session
	SessionSecret string // Used for deriving the cookie encryption key (min 32 chars)

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Dataset storage
	RedisURL       string        // env: REDIS_URL; empty selects the in-process store
	DatasetTTL     time.Duration // env: DATASET_TTL, default 1h
	MaxUploadBytes int64         // env: MAX_UPLOAD_BYTES, default 10 MiB

	// Classification
	StatementColumn string // env: STATEMENT_COLUMN, default "Statement"

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "TacticLens"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:              getEnv("ENV", "development"),
		ServerAddr:       getEnv("SERVER_ADDR", ":3000"),
		BaseURL:          getEnv("BASE_URL", "http://localhost:3000"),
		TLSEnabled:       getEnv("TLS_ENABLED", "") != "",
		TLSCertFile:      getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:       getEnv("TLS_KEY_FILE", ""),
		TLSCAFile:        getEnv("TLS_CA_FILE", ""),
		OIDCIssuer:       getEnv("OIDC_ISSUER", ""),
		OIDCClientID:     getEnv("OIDC_CLIENT_ID", ""),
		OIDCClientSecret: getEnv("OIDC_CLIENT_SECRET", ""),
		OIDCRedirectURL:  getEnv("OIDC_REDIRECT_URL", "http://localhost:3000/auth/callback"),
		SessionSecret:    getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),
		CORSOrigins:      getEnv("CORS_ORIGINS", ""),
		RedisURL:         getEnv("REDIS_URL", ""),
		DatasetTTL:       getEnvDuration("DATASET_TTL", time.Hour),
		MaxUploadBytes:   getEnvInt64("MAX_UPLOAD_BYTES", 10<<20),
		StatementColumn:  getEnv("STATEMENT_COLUMN", "Statement"),

		SiteTitle:   getEnv("SITE_TITLE", "TacticLens"),
		SiteTagline: getEnv("SITE_TAGLINE", "Dictionary-based tactic classification for statement data"),
		SiteFooter:  getEnv("SITE_FOOTER", "TacticLens - dictionary classifier"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsMTLSEnabled returns true if mTLS is configured with a CA file.
func (c *Config) IsMTLSEnabled() bool {
	return c.TLSEnabled && c.TLSCAFile != ""
}
