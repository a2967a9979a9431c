package portal

import (
	"context"

	"github.com/agrimart/agrimart/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/agrimart/agrimart/services/portal MailGW,SMSGW

// MailGW sends plaintext email. Failures never cross this boundary as
// errors; every send reports a boolean outcome and logs its diagnosis.
type MailGW interface {
	Available() bool
	SendOTPEmail(ctx context.Context, to, code string) bool
	SendFarmerNotification(ctx context.Context, farmer *models.User) bool
}

// SMSGW delivers OTP text messages through the provider chain
type SMSGW interface {
	SendOTPSMS(ctx context.Context, phone, code string) bool
}
