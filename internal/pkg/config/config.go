package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agrimart/agrimart/internal/pkg/models"
)

// InitConfig loads configuration from the environment. When running locally
// an env file is read first so developers can keep credentials out of their
// shell profile.
func InitConfig(envFile string) *models.Config {
	local := os.Getenv("APP_ENV")
	if local == "" || local == "local" {
		if err := godotenv.Load(envFile); err != nil {
			log.Println("no env file loaded:", err)
		}
	}

	viper.AutomaticEnv()
	setDefaults()

	return loadConfigFromEnv()
}

func setDefaults() {
	viper.SetDefault("APP_NAME", "agrimart")
	viper.SetDefault("APP_ENV", "local")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("APP_VERSION", "")

	viper.SetDefault("SERVER_HOST", "")
	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)

	viper.SetDefault("AWS_REGION", "us-east-1")

	viper.SetDefault("OTP_LENGTH", 6)
	viper.SetDefault("OTP_EXPIRY_MINUTES", 10)
	viper.SetDefault("MAX_OTP_ATTEMPTS", 3)

	viper.SetDefault("NOTIFY_TIMEOUT_SECONDS", 10)

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FILE_PATH", "")
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = viper.GetString("APP_NAME")
	configs.App.Environment = viper.GetString("APP_ENV")
	configs.App.Debug = viper.GetBool("APP_DEBUG")
	configs.App.Version = viper.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = viper.GetString("SERVER_HOST")
	configs.Server.Port = viper.GetInt("SERVER_PORT")
	configs.Server.ShutdownTimeout = viper.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Session config
	configs.Session.Secret = viper.GetString("SESSION_SECRET")

	// Mail config. The sender password intentionally has no default: an
	// unconfigured credential marks the mail gateway unavailable instead of
	// falling back to a baked-in secret.
	configs.Mail.SMTPHost = viper.GetString("SMTP_HOST")
	configs.Mail.SMTPPort = viper.GetInt("SMTP_PORT")
	configs.Mail.SenderEmail = viper.GetString("MAIL_SENDER_EMAIL")
	configs.Mail.SenderPassword = viper.GetString("MAIL_SENDER_PASSWORD")
	configs.Mail.AdminEmail = viper.GetString("MAIL_ADMIN_EMAIL")
	if configs.Mail.AdminEmail == "" {
		configs.Mail.AdminEmail = configs.Mail.SenderEmail
	}

	// Twilio config (optional, capability-detected at startup)
	configs.Twilio.AccountSID = viper.GetString("TWILIO_ACCOUNT_SID")
	configs.Twilio.AuthToken = viper.GetString("TWILIO_AUTH_TOKEN")
	configs.Twilio.FromNumber = viper.GetString("TWILIO_PHONE_NUMBER")

	// AWS SNS config (optional, capability-detected at startup)
	configs.AWS.AccessKeyID = viper.GetString("AWS_ACCESS_KEY_ID")
	configs.AWS.SecretAccessKey = viper.GetString("AWS_SECRET_ACCESS_KEY")
	configs.AWS.Region = viper.GetString("AWS_REGION")

	// OTP config
	configs.OTP.Length = viper.GetInt("OTP_LENGTH")
	configs.OTP.ExpiryMinutes = viper.GetInt("OTP_EXPIRY_MINUTES")
	configs.OTP.MaxAttempts = viper.GetInt("MAX_OTP_ATTEMPTS")

	// Outbound notification timeout
	configs.Notify.TimeoutSeconds = viper.GetInt("NOTIFY_TIMEOUT_SECONDS")

	// Logger config
	configs.Logger.Level = viper.GetString("LOG_LEVEL")
	configs.Logger.FilePath = viper.GetString("LOG_FILE_PATH")

	return configs
}

// Validate checks the settings that have no usable default. It runs once at
// startup so a misconfigured process fails before serving traffic.
func Validate(cfg *models.Config) error {
	if cfg.Session.Secret == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be a valid port, got %d", cfg.Server.Port)
	}
	if cfg.OTP.Length < 4 || cfg.OTP.Length > 10 {
		return fmt.Errorf("OTP_LENGTH must be between 4 and 10, got %d", cfg.OTP.Length)
	}
	if cfg.OTP.ExpiryMinutes <= 0 {
		return fmt.Errorf("OTP_EXPIRY_MINUTES must be positive, got %d", cfg.OTP.ExpiryMinutes)
	}
	if cfg.OTP.MaxAttempts <= 0 {
		return fmt.Errorf("MAX_OTP_ATTEMPTS must be positive, got %d", cfg.OTP.MaxAttempts)
	}
	if cfg.Notify.TimeoutSeconds <= 0 {
		return fmt.Errorf("NOTIFY_TIMEOUT_SECONDS must be positive, got %d", cfg.Notify.TimeoutSeconds)
	}
	return nil
}
