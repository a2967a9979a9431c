package gateway

import (
	"context"
	"time"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/agrimart/agrimart/internal/pkg/logger"
	"github.com/agrimart/agrimart/internal/pkg/models"
)

// twilioProvider is the primary SMS provider
type twilioProvider struct {
	client *twilio.RestClient
	from   string
}

// newTwilioProvider returns nil when the Twilio credentials are absent,
// which removes the provider from the chain.
func newTwilioProvider(cfg models.TwilioConfig, timeout time.Duration) *twilioProvider {
	if cfg.AccountSID == "" || cfg.AuthToken == "" || cfg.FromNumber == "" {
		return nil
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	client.Client.SetTimeout(timeout)

	logger.Info("Twilio SMS provider initialized")
	return &twilioProvider{client: client, from: cfg.FromNumber}
}

func (p *twilioProvider) Name() string { return "twilio" }

func (p *twilioProvider) Send(ctx context.Context, phone, message string) sendResult {
	params := &openapi.CreateMessageParams{}
	params.SetTo(phone)
	params.SetFrom(p.from)
	params.SetBody(message)

	resp, err := p.client.Api.CreateMessage(params)
	if err != nil {
		logger.Warn("Twilio send failed",
			logger.String("to", phone),
			logger.Err(err))
		return sendFailed
	}

	sid := ""
	if resp.Sid != nil {
		sid = *resp.Sid
	}
	logger.Info("Twilio SMS sent",
		logger.String("to", phone),
		logger.String("sid", sid))
	return sendOK
}
