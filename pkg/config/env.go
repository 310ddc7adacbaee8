package config

const (
	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvViewSecret = "VIEW_SECRET"
	EnvBaseURL    = "BASE_URL"
	EnvCORSOrigin = "CORS_ORIGIN"

	EnvDataDir   = "DATA_DIR"
	EnvUploadDir = "UPLOAD_DIR"

	EnvMaxUploadSize  = "MAX_UPLOAD_SIZE"
	EnvMaxUploadFiles = "MAX_UPLOAD_FILES"

	EnvSMTPHost   = "SMTP_HOST"
	EnvSMTPPort   = "SMTP_PORT"
	EnvSMTPSecure = "SMTP_SECURE"
	EnvSMTPUser   = "SMTP_USER"
	EnvSMTPPass   = "SMTP_PASS"
	EnvSMTPFrom   = "SMTP_FROM"

	EnvSendGridAPIKey = "SENDGRID_API_KEY"
	EnvSiteOwnerEmail = "SITE_OWNER_EMAIL"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)
