package models

// Config represents application configuration
type Config struct {
	App     AppConfig
	Server  ServerConfig
	Session SessionConfig
	Mail    MailConfig
	Twilio  TwilioConfig
	AWS     AWSConfig
	OTP     OTPConfig
	Notify  NotifyConfig
	Logger  LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ShutdownTimeout int // in seconds
}

// SessionConfig contains cookie-session configuration.
// Secret has no default; startup validation rejects an empty value.
type SessionConfig struct {
	Secret string
}

// MailConfig contains the SMTP relay and sender credential used for
// OTP emails and admin notifications.
type MailConfig struct {
	SMTPHost       string
	SMTPPort       int
	SenderEmail    string
	SenderPassword string
	AdminEmail     string
}

// TwilioConfig contains the primary SMS provider credentials (optional)
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

// AWSConfig contains the secondary SMS provider credentials (optional)
type AWSConfig struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
}

// OTPConfig contains the passcode issuance and verification settings
type OTPConfig struct {
	Length        int
	ExpiryMinutes int
	MaxAttempts   int
}

// NotifyConfig bounds outbound mail/SMS calls so a slow provider cannot
// stall a request indefinitely
type NotifyConfig struct {
	TimeoutSeconds int
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
