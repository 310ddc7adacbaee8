package config

import "time"

const (
	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	// DefaultViewSecret must be overridden in production; Load warns when it
	// is left in place.
	DefaultViewSecret = "changeme-to-secure-secret"
	DefaultBaseURL    = "http://localhost:8080"

	// The booking form is a separately hosted SPA, so cross-origin calls are
	// allowed from anywhere unless an origin is pinned.
	DefaultCORSOrigin = "*"

	DefaultDataDir   = "data"
	DefaultUploadDir = "uploads"

	DefaultMaxUploadSize  = 10 * 1024 * 1024 // 10 MiB per file
	DefaultMaxUploadFiles = 3

	DefaultSMTPPort   = 587
	DefaultSMTPFrom   = "no-reply@psycotikcrew.com"
	DefaultOwnerEmail = "booking@psycotikcrew.com"

	// SendGrid's SMTP relay, used when only SENDGRID_API_KEY is set.
	SendGridSMTPHost = "smtp.sendgrid.net"
	SendGridSMTPUser = "apikey"

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)
