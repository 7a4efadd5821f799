package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// t.Setenv clears inherited values for the duration of the test.
	for _, key := range []string{
		"APP_HOST", "APP_PORT", "APP_ENV",
		"CATALOG_DIR", "CATALOG_CACHE_TTL",
		"SITE_URL", "WHATSAPP_NUMBER",
		"VALKEY_HOST", "VALKEY_PORT", "VALKEY_PASSWORD",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("addr: got %q, want %q", cfg.Addr(), "0.0.0.0:8080")
	}
	if !cfg.IsDev() {
		t.Error("default env should be development")
	}
	if cfg.CatalogDir != "catalog" {
		t.Errorf("catalog dir: got %q, want %q", cfg.CatalogDir, "catalog")
	}
	if cfg.CacheTTL != 60*time.Second {
		t.Errorf("cache ttl: got %v, want 60s", cfg.CacheTTL)
	}
	if cfg.ValkeyPort != "6379" {
		t.Errorf("valkey port: got %q, want 6379", cfg.ValkeyPort)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("APP_ENV", "production")
	t.Setenv("CATALOG_DIR", "/srv/catalog")
	t.Setenv("CATALOG_CACHE_TTL", "300")
	t.Setenv("SITE_URL", "https://glamora.kz/")
	t.Setenv("WHATSAPP_NUMBER", "+7 (700) 123-45-67")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Addr() != "127.0.0.1:9000" {
		t.Errorf("addr: got %q", cfg.Addr())
	}
	if cfg.IsDev() {
		t.Error("production env should not be dev")
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Errorf("cache ttl: got %v, want 5m", cfg.CacheTTL)
	}
	if cfg.SiteURL != "https://glamora.kz" {
		t.Errorf("site url should be trimmed: got %q", cfg.SiteURL)
	}
	if cfg.WhatsAppNumber != "77001234567" {
		t.Errorf("whatsapp number should be normalized: got %q", cfg.WhatsAppNumber)
	}
}

func TestLoadBadTTL(t *testing.T) {
	for _, ttl := range []string{"abc", "0", "-5"} {
		t.Run(ttl, func(t *testing.T) {
			t.Setenv("CATALOG_CACHE_TTL", ttl)
			if _, err := Load(); err == nil {
				t.Errorf("ttl %q should be rejected", ttl)
			}
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"+7 (700) 123-45-67", "77001234567", false},
		{"77001234567", "77001234567", false},
		{"+1 202 555 0100", "12025550100", false},
		{"0123456789", "", true}, // leading zero
		{"123", "", true},        // too short
		{"no digits", "", true},
	}
	for _, tt := range tests {
		got, err := NormalizePhone(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("NormalizePhone(%q) should fail, got %q", tt.input, got)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("NormalizePhone(%q) = %q, %v, want %q", tt.input, got, err, tt.want)
		}
	}
}

func TestRequireServe(t *testing.T) {
	cfg := &Config{}
	if err := cfg.RequireServe(); err == nil {
		t.Error("empty config should fail")
	}

	cfg.SiteURL = "https://glamora.kz"
	if err := cfg.RequireServe(); err == nil {
		t.Error("missing whatsapp number should fail")
	}

	cfg.WhatsAppNumber = "77001234567"
	if err := cfg.RequireServe(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
