package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/agrimart/agrimart/internal/pkg/logger"
	"github.com/agrimart/agrimart/internal/pkg/models"
)

// sendResult is the typed outcome of one provider attempt
type sendResult int

const (
	sendOK sendResult = iota
	sendUnavailable
	sendFailed
)

// smsProvider is one link in the delivery chain
type smsProvider interface {
	Name() string
	Send(ctx context.Context, phone, message string) sendResult
}

// SMSGW walks an ordered provider chain until one delivery succeeds. The
// chain is assembled once at startup from whichever providers have working
// credentials; a provider whose client fails to initialize stays absent for
// the process lifetime. The console simulation at the tail never fails, so
// OTP login stays usable without any SMS credentials.
type SMSGW struct {
	providers     []smsProvider
	expiryMinutes int
}

// NewSMSGW builds the provider chain from the loaded configuration
func NewSMSGW(cfg *models.Config) *SMSGW {
	timeout := time.Duration(cfg.Notify.TimeoutSeconds) * time.Second
	g := &SMSGW{expiryMinutes: cfg.OTP.ExpiryMinutes}

	if p := newTwilioProvider(cfg.Twilio, timeout); p != nil {
		g.providers = append(g.providers, p)
	}
	if p := newSNSProvider(cfg.AWS, timeout); p != nil {
		g.providers = append(g.providers, p)
	}
	g.providers = append(g.providers, consoleProvider{})

	names := make([]string, 0, len(g.providers))
	for _, p := range g.providers {
		names = append(names, p.Name())
	}
	logger.Info("SMS provider chain assembled", logger.Strings("providers", names))

	return g
}

// SendOTPSMS tries each provider in order until one accepts the message
func (g *SMSGW) SendOTPSMS(ctx context.Context, phone, code string) bool {
	message := fmt.Sprintf("Your Agrimart OTP is: %s. Valid for %d minutes.", code, g.expiryMinutes)

	for _, p := range g.providers {
		switch p.Send(ctx, phone, message) {
		case sendOK:
			return true
		case sendUnavailable:
			logger.Warn("SMS provider unavailable, trying next",
				logger.String("provider", p.Name()))
		case sendFailed:
			logger.Warn("SMS provider send failed, trying next",
				logger.String("provider", p.Name()))
		}
	}
	return false
}

// consoleProvider simulates delivery by logging the message. Used in
// development and as the guaranteed tail of the chain.
type consoleProvider struct{}

func (consoleProvider) Name() string { return "console-simulation" }

func (consoleProvider) Send(ctx context.Context, phone, message string) sendResult {
	logger.Info("[SIMULATED] SMS delivery",
		logger.String("to", phone),
		logger.String("message", message))
	return sendOK
}
