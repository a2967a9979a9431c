package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrimart/agrimart/internal/pkg/models"
)

func TestInitConfig_Defaults(t *testing.T) {
	cfg := InitConfig("nonexistent.env")

	assert.Equal(t, "agrimart", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "smtp.gmail.com", cfg.Mail.SMTPHost)
	assert.Equal(t, 587, cfg.Mail.SMTPPort)
	assert.Equal(t, "us-east-1", cfg.AWS.Region)
	assert.Equal(t, 6, cfg.OTP.Length)
	assert.Equal(t, 10, cfg.OTP.ExpiryMinutes)
	assert.Equal(t, 3, cfg.OTP.MaxAttempts)
	assert.Equal(t, 10, cfg.Notify.TimeoutSeconds)
	assert.Equal(t, "info", cfg.Logger.Level)

	// Credentials never have defaults
	assert.Empty(t, cfg.Session.Secret)
	assert.Empty(t, cfg.Mail.SenderPassword)
}

func TestInitConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("MAIL_SENDER_EMAIL", "sender@example.com")
	t.Setenv("OTP_LENGTH", "4")

	cfg := InitConfig("nonexistent.env")

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "test-secret", cfg.Session.Secret)
	assert.Equal(t, 4, cfg.OTP.Length)

	// Admin email falls back to the sender address when unset
	assert.Equal(t, "sender@example.com", cfg.Mail.AdminEmail)
}

func TestInitConfig_AdminEmailOverride(t *testing.T) {
	t.Setenv("MAIL_SENDER_EMAIL", "sender@example.com")
	t.Setenv("MAIL_ADMIN_EMAIL", "admin@example.com")

	cfg := InitConfig("nonexistent.env")

	assert.Equal(t, "admin@example.com", cfg.Mail.AdminEmail)
}

func validConfig() *models.Config {
	return &models.Config{
		Session: models.SessionConfig{Secret: "test-secret"},
		Server:  models.ServerConfig{Port: 8080},
		OTP:     models.OTPConfig{Length: 6, ExpiryMinutes: 10, MaxAttempts: 3},
		Notify:  models.NotifyConfig{TimeoutSeconds: 10},
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, Validate(validConfig()))
}

func TestValidate_MissingSessionSecret(t *testing.T) {
	cfg := validConfig()
	cfg.Session.Secret = ""

	err := Validate(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestValidate_BadPort(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 0

	err := Validate(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "SERVER_PORT")
}

func TestValidate_OTPLengthBounds(t *testing.T) {
	for _, length := range []int{0, 3, 11} {
		cfg := validConfig()
		cfg.OTP.Length = length

		err := Validate(cfg)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "OTP_LENGTH")
	}

	for _, length := range []int{4, 10} {
		cfg := validConfig()
		cfg.OTP.Length = length
		assert.NoError(t, Validate(cfg))
	}
}

func TestValidate_NonPositiveSettings(t *testing.T) {
	cfg := validConfig()
	cfg.OTP.ExpiryMinutes = 0
	assert.Error(t, Validate(cfg))

	cfg = validConfig()
	cfg.OTP.MaxAttempts = 0
	assert.Error(t, Validate(cfg))

	cfg = validConfig()
	cfg.Notify.TimeoutSeconds = 0
	assert.Error(t, Validate(cfg))
}
