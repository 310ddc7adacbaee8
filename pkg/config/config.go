package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"pskbooking/pkg/logger"
)

type Config struct {
	Port     string
	LogLevel string

	ViewSecret string
	BaseURL    string
	CORSOrigin string

	DataDir   string
	UploadDir string

	MaxUploadSize  int64
	MaxUploadFiles int

	SMTPHost   string
	SMTPPort   int
	SMTPSecure bool
	SMTPUser   string
	SMTPPass   string
	SMTPFrom   string

	SendGridAPIKey string
	SiteOwnerEmail string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	Log *logger.Logger
}

func Load(serviceName string) *Config {
	cfg := &Config{
		Port:     getEnvStr(EnvPort, DefaultPort),
		LogLevel: getEnvStr(EnvLogLevel, DefaultLogLevel),

		ViewSecret: getEnvStr(EnvViewSecret, DefaultViewSecret),
		BaseURL:    getEnvStr(EnvBaseURL, DefaultBaseURL),
		CORSOrigin: getEnvStr(EnvCORSOrigin, DefaultCORSOrigin),

		DataDir:   getEnvStr(EnvDataDir, DefaultDataDir),
		UploadDir: getEnvStr(EnvUploadDir, DefaultUploadDir),

		MaxUploadSize:  int64(getEnvNum(EnvMaxUploadSize, DefaultMaxUploadSize)),
		MaxUploadFiles: getEnvNum(EnvMaxUploadFiles, DefaultMaxUploadFiles),

		SMTPHost:   getEnvStr(EnvSMTPHost, ""),
		SMTPPort:   getEnvNum(EnvSMTPPort, DefaultSMTPPort),
		SMTPSecure: getEnvBool(EnvSMTPSecure, false),
		SMTPUser:   getEnvStr(EnvSMTPUser, ""),
		SMTPPass:   getEnvStr(EnvSMTPPass, ""),
		SMTPFrom:   getEnvStr(EnvSMTPFrom, DefaultSMTPFrom),

		SendGridAPIKey: getEnvStr(EnvSendGridAPIKey, ""),
		SiteOwnerEmail: getEnvStr(EnvSiteOwnerEmail, DefaultOwnerEmail),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		Log: logger.New(logger.Config{
			Level:     getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:    logger.JSON,
			AddSource: true,
			Service:   serviceName,
		}),
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	if cfg.ViewSecret == DefaultViewSecret {
		cfg.Log.Warn("VIEW_SECRET is set to its default value; override it in production")
	}
	cfg.LogConfiguration()
	return cfg
}

func (cfg *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if u, err := url.Parse(cfg.BaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Sprintf("BaseURL must be an absolute http(s) URL, got: %s", cfg.BaseURL))
	}

	if cfg.ViewSecret == "" {
		errs = append(errs, "ViewSecret cannot be empty")
	}
	if cfg.DataDir == "" {
		errs = append(errs, "DataDir cannot be empty")
	}
	if cfg.UploadDir == "" {
		errs = append(errs, "UploadDir cannot be empty")
	}

	if cfg.MaxUploadSize <= 0 {
		errs = append(errs, fmt.Sprintf("MaxUploadSize must be positive, got: %d", cfg.MaxUploadSize))
	}
	if cfg.MaxUploadFiles <= 0 {
		errs = append(errs, fmt.Sprintf("MaxUploadFiles must be positive, got: %d", cfg.MaxUploadFiles))
	}

	if cfg.SMTPPort < 1 || cfg.SMTPPort > 65535 {
		errs = append(errs, fmt.Sprintf("SMTPPort must be between 1 and 65535, got: %d", cfg.SMTPPort))
	}

	if cfg.ReadTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}

	if len(errs) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, e := range errs {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, e)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

// MailConfigured reports whether either SMTP transport is usable. When false
// the service runs without email notifications.
func (cfg *Config) MailConfigured() bool {
	return cfg.SMTPHost != "" || cfg.SendGridAPIKey != ""
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"port", cfg.Port,
		"log_level", cfg.LogLevel,
		"base_url", cfg.BaseURL,
		"cors_origin", cfg.CORSOrigin,
		"view_secret_overridden", cfg.ViewSecret != DefaultViewSecret,
		"data_dir", cfg.DataDir,
		"upload_dir", cfg.UploadDir,
		"max_upload_size", cfg.MaxUploadSize,
		"max_upload_files", cfg.MaxUploadFiles,
		"smtp_host", cfg.SMTPHost,
		"smtp_port", cfg.SMTPPort,
		"smtp_secure", cfg.SMTPSecure,
		"smtp_user_set", cfg.SMTPUser != "",
		"smtp_from", cfg.SMTPFrom,
		"sendgrid_key_set", cfg.SendGridAPIKey != "",
		"site_owner_email", cfg.SiteOwnerEmail,
		"mail_configured", cfg.MailConfigured(),
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
	)
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
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
