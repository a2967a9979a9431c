package usecase

import (
	"github.com/agrimart/agrimart/internal/pkg/models"
	"github.com/agrimart/agrimart/services/portal"
)

// PortalUC orchestrates the login, registration and profile flows over the
// in-memory stores and the notification gateways.
type PortalUC struct {
	userRepo portal.UserRepo
	otpRepo  portal.OTPRepo
	mailGW   portal.MailGW
	smsGW    portal.SMSGW
	cfg      *models.Config
}

// NewPortalUC creates a new portal usecase instance
func NewPortalUC(
	userRepo portal.UserRepo,
	otpRepo portal.OTPRepo,
	mailGW portal.MailGW,
	smsGW portal.SMSGW,
	cfg *models.Config,
) *PortalUC {
	return &PortalUC{
		userRepo: userRepo,
		otpRepo:  otpRepo,
		mailGW:   mailGW,
		smsGW:    smsGW,
		cfg:      cfg,
	}
}
