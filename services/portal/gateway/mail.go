package gateway

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"net/textproto"
	"strings"
	"time"

	"github.com/agrimart/agrimart/internal/pkg/logger"
	"github.com/agrimart/agrimart/internal/pkg/models"
)

// smtpAuthFailed is the reply code for rejected credentials
const smtpAuthFailed = 535

// MailGW sends plaintext mail over an SMTP STARTTLS session. Every failure
// is converted to a boolean result at this boundary; callers never see
// transport errors.
type MailGW struct {
	cfg           models.MailConfig
	timeout       time.Duration
	expiryMinutes int
}

// NewMailGW creates the mail gateway from the loaded configuration
func NewMailGW(cfg *models.Config) *MailGW {
	g := &MailGW{
		cfg:           cfg.Mail,
		timeout:       time.Duration(cfg.Notify.TimeoutSeconds) * time.Second,
		expiryMinutes: cfg.OTP.ExpiryMinutes,
	}
	if !g.Available() {
		logger.Warn("Mail gateway has no sender credentials, email delivery disabled")
	}
	return g
}

// Available reports whether sender credentials are configured
func (g *MailGW) Available() bool {
	return g.cfg.SenderEmail != "" && g.cfg.SenderPassword != ""
}

// SendOTPEmail delivers a login passcode to the identifier address
func (g *MailGW) SendOTPEmail(ctx context.Context, to, code string) bool {
	subject := "Your Agrimart Login OTP"
	body := fmt.Sprintf(
		"Hello!\n\n"+
			"Your OTP for Agrimart login is: %s\n\n"+
			"This OTP is valid for %d minutes.\n"+
			"If you didn't request this, please ignore this email.\n\n"+
			"Best regards,\nAgrimart Team\n",
		code, g.expiryMinutes)

	return g.send(to, subject, body)
}

// SendFarmerNotification mails a new registration to the admin address
func (g *MailGW) SendFarmerNotification(ctx context.Context, farmer *models.User) bool {
	subject := fmt.Sprintf("New Farmer Registration - %s", farmer.Name)
	body := fmt.Sprintf(
		"New Farmer Registration Details:\n\n"+
			"Name: %s\n"+
			"Mobile: %s\n"+
			"Type: %s\n"+
			"Description: %s\n\n"+
			"This information was submitted through the Agrimart website.\n",
		farmer.Name, farmer.Mobile, farmer.CropType, farmer.CropDescription)

	return g.send(g.cfg.AdminEmail, subject, body)
}

func (g *MailGW) send(to, subject, body string) bool {
	if !g.Available() {
		logger.Warn("Mail gateway not configured, skipping send",
			logger.String("to", to))
		return false
	}

	if err := g.transmit(to, subject, body); err != nil {
		g.logFailure(err, to)
		return false
	}

	logger.Info("Email sent",
		logger.String("to", to),
		logger.String("subject", subject))
	return true
}

// transmit runs one SMTP session: dial, STARTTLS, authenticate, send. The
// configured timeout doubles as the IO deadline for the whole session so a
// stalled relay cannot hold the request open.
func (g *MailGW) transmit(to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", g.cfg.SMTPHost, g.cfg.SMTPPort)

	conn, err := net.DialTimeout("tcp", addr, g.timeout)
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	_ = conn.SetDeadline(time.Now().Add(g.timeout))

	client, err := smtp.NewClient(conn, g.cfg.SMTPHost)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if err := client.StartTLS(&tls.Config{ServerName: g.cfg.SMTPHost}); err != nil {
		return fmt.Errorf("smtp starttls: %w", err)
	}

	auth := smtp.PlainAuth("", g.cfg.SenderEmail, g.cfg.SenderPassword, g.cfg.SMTPHost)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}

	if err := client.Mail(g.cfg.SenderEmail); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt to: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write([]byte(g.message(to, subject, body))); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close data: %w", err)
	}

	return client.Quit()
}

func (g *MailGW) message(to, subject, body string) string {
	var b strings.Builder
	b.WriteString("From: " + g.cfg.SenderEmail + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")
	return b.String()
}

// logFailure classifies the failure the way operators triage it:
// authentication, protocol, or unexpected transport error.
func (g *MailGW) logFailure(err error, to string) {
	var protoErr *textproto.Error
	switch {
	case errors.As(err, &protoErr) && protoErr.Code == smtpAuthFailed:
		logger.Error("Email authentication failed",
			logger.String("to", to),
			logger.String("sender", g.cfg.SenderEmail),
			logger.Err(err))
	case errors.As(err, &protoErr):
		logger.Error("SMTP protocol error",
			logger.String("to", to),
			logger.Int("code", protoErr.Code),
			logger.Err(err))
	default:
		logger.Error("Unexpected email failure",
			logger.String("to", to),
			logger.Err(err))
	}
}
