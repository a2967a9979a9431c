package gateway

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agrimart/agrimart/internal/pkg/models"
)

func TestMailGW_UnavailableWithoutCredentials(t *testing.T) {
	gw := NewMailGW(&models.Config{
		Mail: models.MailConfig{
			SMTPHost: "smtp.gmail.com",
			SMTPPort: 587,
		},
		OTP:    models.OTPConfig{ExpiryMinutes: 10},
		Notify: models.NotifyConfig{TimeoutSeconds: 10},
	})

	assert.False(t, gw.Available())
	assert.False(t, gw.SendOTPEmail(context.Background(), "alice@example.com", "123456"))
	assert.False(t, gw.SendFarmerNotification(context.Background(), &models.User{Name: "Ravi"}))
}

func TestMailGW_AvailableWithCredentials(t *testing.T) {
	gw := NewMailGW(&models.Config{
		Mail: models.MailConfig{
			SMTPHost:       "smtp.gmail.com",
			SMTPPort:       587,
			SenderEmail:    "sender@example.com",
			SenderPassword: "app-password",
		},
	})

	assert.True(t, gw.Available())
}

func TestMailGW_MessageFormat(t *testing.T) {
	gw := &MailGW{cfg: models.MailConfig{SenderEmail: "sender@example.com"}}

	msg := gw.message("alice@example.com", "Your Agrimart Login OTP", "body text")

	assert.Contains(t, msg, "From: sender@example.com\r\n")
	assert.Contains(t, msg, "To: alice@example.com\r\n")
	assert.Contains(t, msg, "Subject: Your Agrimart Login OTP\r\n")
	assert.Contains(t, msg, "\r\n\r\nbody text")
}
