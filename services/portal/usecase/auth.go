package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/agrimart/agrimart/internal/pkg/logger"
	"github.com/agrimart/agrimart/internal/pkg/models"
	"github.com/agrimart/agrimart/services/portal"
)

// generateCode builds a fixed-length decimal passcode, each digit drawn
// independently from crypto/rand.
func generateCode(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate OTP digit: %w", err)
		}
		digits[i] = '0' + byte(n.Int64())
	}
	return string(digits), nil
}

// RequestLogin issues a fresh OTP for the identifier, overwriting any prior
// challenge, and delivers it over the requested channel. Email delivery
// failure falls back to disclosing the code in the result (development
// fallback); SMS delivery failure fails the request.
func (u *PortalUC) RequestLogin(ctx context.Context, loginType, identifier string) (*models.OTPDelivery, error) {
	if identifier == "" {
		return nil, portal.ErrMissingIdentifier
	}

	code, err := generateCode(u.cfg.OTP.Length)
	if err != nil {
		return nil, err
	}

	otp := &models.OTP{
		Identifier: identifier,
		Code:       code,
		IssuedAt:   time.Now(),
	}
	if err := u.otpRepo.Create(ctx, otp); err != nil {
		return nil, fmt.Errorf("failed to store OTP: %w", err)
	}

	if loginType != models.LoginTypeEmail {
		if !u.smsGW.SendOTPSMS(ctx, identifier, code) {
			return nil, portal.ErrSMSDeliveryFailed
		}
		return &models.OTPDelivery{Identifier: identifier, LoginType: models.LoginTypePhone}, nil
	}

	delivery := &models.OTPDelivery{Identifier: identifier, LoginType: models.LoginTypeEmail}
	if !u.mailGW.SendOTPEmail(ctx, identifier, code) {
		logger.Warn("Email OTP delivery failed, using development fallback",
			logger.String("identifier", identifier))
		delivery.DevCode = code
	}
	return delivery, nil
}

// VerifyLogin checks the submitted code and, on success, resolves or creates
// the user record for the identifier.
func (u *PortalUC) VerifyLogin(ctx context.Context, loginType, identifier, code string) (*models.User, error) {
	if !u.otpRepo.Verify(ctx, identifier, code) {
		return nil, portal.ErrInvalidOTP
	}

	user, err := u.userRepo.GetByIdentifier(ctx, identifier)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, portal.ErrUserNotFound) {
		return nil, err
	}

	user = &models.User{
		Name:       "New User",
		CreatedAt:  time.Now(),
		IsVerified: true,
	}
	if loginType == models.LoginTypeEmail {
		user.Email = identifier
	} else {
		user.Phone = identifier
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("Created user on first verified login",
		logger.Int("user_id", user.ID),
		logger.String("login_type", loginType))
	return user, nil
}

// GetUserByID retrieves a user record by id
func (u *PortalUC) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	return u.userRepo.GetByID(ctx, id)
}
