package config

import (
	"strings"
	"testing"
	"time"
)

func productionConfig() *Config {
	return &Config{
		Environment:        EnvProduction,
		LogLevel:           "info",
		CORSAllowedOrigins: "https://wardrobe.example.com",
		SentryDSN:          "https://key@sentry.example.com/1",
		ItemCacheTTL:       10 * time.Minute,
	}
}

func TestValidateForProduction(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"non-production skips checks", func(c *Config) {
			c.Environment = EnvDevelopment
			c.LogLevel = "debug"
			c.CORSAllowedOrigins = "*"
			c.SentryDSN = ""
		}, ""},
		{"debug logging", func(c *Config) { c.LogLevel = "debug" }, "LOG_LEVEL"},
		{"wildcard cors", func(c *Config) { c.CORSAllowedOrigins = "https://a.example.com, *" }, "CORS_ALLOWED_ORIGINS"},
		{"missing sentry", func(c *Config) { c.SentryDSN = "" }, "SENTRY_DSN"},
		{"zero cache ttl", func(c *Config) { c.ItemCacheTTL = 0 }, "ITEM_CACHE_TTL"},
		{"sample ratio above one", func(c *Config) { c.OtelSampleRatio = 1.5 }, "OTEL_SAMPLE_RATIO"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := productionConfig()
			tt.mutate(cfg)
			err := ValidateForProduction(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error mentioning %s, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateForProduction_CollectsAllProblems(t *testing.T) {
	cfg := productionConfig()
	cfg.LogLevel = "debug"
	cfg.SentryDSN = ""

	err := ValidateForProduction(cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"LOG_LEVEL", "SENTRY_DSN"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %s in %q", want, err.Error())
		}
	}
}
