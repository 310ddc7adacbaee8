package config

import (
	"strings"
	"testing"

	"pskbooking/pkg/logger"
)

func validConfig() *Config {
	return &Config{
		Port:            "8080",
		LogLevel:        "info",
		ViewSecret:      "some-secret",
		BaseURL:         "https://psycotikcrew.com",
		DataDir:         "data",
		UploadDir:       "uploads",
		MaxUploadSize:   DefaultMaxUploadSize,
		MaxUploadFiles:  DefaultMaxUploadFiles,
		SMTPPort:        DefaultSMTPPort,
		ReadTimeout:     DefaultReadTimeout,
		WriteTimeout:    DefaultWriteTimeout,
		IdleTimeout:     DefaultIdleTimeout,
		ShutdownTimeout: DefaultShutdownTimeout,
		Log: logger.New(logger.Config{
			Level:   "error",
			Format:  logger.JSON,
			Service: "test",
		}),
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		wantPart string
	}{
		{"bad port", func(c *Config) { c.Port = "not-a-port" }, "Port"},
		{"port out of range", func(c *Config) { c.Port = "70000" }, "Port"},
		{"relative base url", func(c *Config) { c.BaseURL = "localhost:8080" }, "BaseURL"},
		{"empty secret", func(c *Config) { c.ViewSecret = "" }, "ViewSecret"},
		{"empty data dir", func(c *Config) { c.DataDir = "" }, "DataDir"},
		{"empty upload dir", func(c *Config) { c.UploadDir = "" }, "UploadDir"},
		{"zero upload size", func(c *Config) { c.MaxUploadSize = 0 }, "MaxUploadSize"},
		{"zero upload files", func(c *Config) { c.MaxUploadFiles = 0 }, "MaxUploadFiles"},
		{"zero read timeout", func(c *Config) { c.ReadTimeout = 0 }, "ReadTimeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantPart) {
				t.Errorf("error %q does not mention %s", err.Error(), tt.wantPart)
			}
		})
	}
}

func TestMailConfigured(t *testing.T) {
	cfg := validConfig()
	if cfg.MailConfigured() {
		t.Error("MailConfigured() = true with no transport set")
	}

	cfg.SMTPHost = "smtp.example.com"
	if !cfg.MailConfigured() {
		t.Error("MailConfigured() = false with SMTP host set")
	}

	cfg.SMTPHost = ""
	cfg.SendGridAPIKey = "SG.key"
	if !cfg.MailConfigured() {
		t.Error("MailConfigured() = false with SendGrid key set")
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("TEST_STR", "value")
	t.Setenv("TEST_NUM", "42")
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_DUR", "90s")

	if got := getEnvStr("TEST_STR", "fallback"); got != "value" {
		t.Errorf("getEnvStr = %q", got)
	}
	if got := getEnvStr("TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("getEnvStr fallback = %q", got)
	}
	if got := getEnvNum("TEST_NUM", 0); got != 42 {
		t.Errorf("getEnvNum = %d", got)
	}
	if got := getEnvNum("TEST_NOT_NUM", 7); got != 7 {
		t.Errorf("getEnvNum fallback = %d", got)
	}
	if got := getEnvBool("TEST_BOOL", false); !got {
		t.Error("getEnvBool = false")
	}
	if got := getEnvDuration("TEST_DUR", 0); got.Seconds() != 90 {
		t.Errorf("getEnvDuration = %s", got)
	}
}
