// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultCatalogDir is used when CATALOG_DIR is unset.
const DefaultCatalogDir = "catalog"

// phonePattern matches a normalized international WhatsApp number:
// 7-15 digits, leading zero disallowed.
var phonePattern = regexp.MustCompile(`^[1-9]\d{6,14}$`)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production"

	// Catalog source of truth
	CatalogDir string
	CacheTTL   time.Duration

	// Public site
	SiteURL        string // required for sitemap/robots
	WhatsAppNumber string // normalized digits, required for checkout links

	// Valkey (Redis-compatible shared snapshot cache), optional
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. The WhatsApp number is normalized to
// digits; an unparseable number or TTL is an error. SITE_URL and
// WHATSAPP_NUMBER may be empty here — the serve command requires them,
// the validate command does not.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		CatalogDir: envOrDefault("CATALOG_DIR", DefaultCatalogDir),

		SiteURL: strings.TrimRight(strings.TrimSpace(os.Getenv("SITE_URL")), "/"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),
	}

	ttlSeconds := envOrDefault("CATALOG_CACHE_TTL", "60")
	seconds, err := strconv.Atoi(ttlSeconds)
	if err != nil || seconds <= 0 {
		return nil, fmt.Errorf("CATALOG_CACHE_TTL must be a positive number of seconds, got %q", ttlSeconds)
	}
	cfg.CacheTTL = time.Duration(seconds) * time.Second

	if raw := os.Getenv("WHATSAPP_NUMBER"); raw != "" {
		normalized, err := NormalizePhone(raw)
		if err != nil {
			return nil, err
		}
		cfg.WhatsAppNumber = normalized
	}

	return cfg, nil
}

// NormalizePhone strips formatting characters from a phone number and
// verifies the result is a plausible international number.
func NormalizePhone(raw string) (string, error) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	normalized := b.String()
	if !phonePattern.MatchString(normalized) {
		return "", fmt.Errorf("WHATSAPP_NUMBER must be digits only (7-15 digits, leading zero disallowed), got %q", raw)
	}
	return normalized, nil
}

// RequireServe checks the values only the HTTP server needs.
func (c *Config) RequireServe() error {
	if c.SiteURL == "" {
		return fmt.Errorf("SITE_URL is required for sitemap/robots")
	}
	if c.WhatsAppNumber == "" {
		return fmt.Errorf("WHATSAPP_NUMBER is not set: provide a WhatsApp number for contact links")
	}
	return nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
