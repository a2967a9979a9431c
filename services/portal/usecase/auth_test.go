package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrimart/agrimart/internal/pkg/models"
	"github.com/agrimart/agrimart/services/portal"
	"github.com/agrimart/agrimart/services/portal/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		OTP: models.OTPConfig{
			Length:        6,
			ExpiryMinutes: 10,
			MaxAttempts:   3,
		},
	}
}

func newTestUC(ctrl *gomock.Controller) (*PortalUC, *mocks.MockUserRepo, *mocks.MockOTPRepo, *mocks.MockMailGW, *mocks.MockSMSGW) {
	userRepo := mocks.NewMockUserRepo(ctrl)
	otpRepo := mocks.NewMockOTPRepo(ctrl)
	mailGW := mocks.NewMockMailGW(ctrl)
	smsGW := mocks.NewMockSMSGW(ctrl)
	uc := NewPortalUC(userRepo, otpRepo, mailGW, smsGW, testConfig())
	return uc, userRepo, otpRepo, mailGW, smsGW
}

func TestGenerateCode_LengthAndDigits(t *testing.T) {
	code, err := generateCode(6)

	require.NoError(t, err)
	assert.Len(t, code, 6)
	for _, c := range code {
		assert.True(t, c >= '0' && c <= '9')
	}
}

func TestRequestLogin_MissingIdentifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, _, _, _ := newTestUC(ctrl)

	_, err := uc.RequestLogin(context.Background(), models.LoginTypeEmail, "")

	assert.ErrorIs(t, err, portal.ErrMissingIdentifier)
}

func TestRequestLogin_EmailDelivered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, otpRepo, mailGW, _ := newTestUC(ctrl)

	var issuedCode string
	otpRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, otp *models.OTP) error {
			assert.Equal(t, "alice@example.com", otp.Identifier)
			assert.Len(t, otp.Code, 6)
			assert.False(t, otp.IssuedAt.IsZero())
			issuedCode = otp.Code
			return nil
		})
	mailGW.EXPECT().
		SendOTPEmail(gomock.Any(), "alice@example.com", gomock.Any()).
		DoAndReturn(func(ctx context.Context, to, code string) bool {
			assert.Equal(t, issuedCode, code)
			return true
		})

	delivery, err := uc.RequestLogin(context.Background(), models.LoginTypeEmail, "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", delivery.Identifier)
	assert.Equal(t, models.LoginTypeEmail, delivery.LoginType)
	assert.Empty(t, delivery.DevCode)
}

func TestRequestLogin_EmailFailureUsesDevFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, otpRepo, mailGW, _ := newTestUC(ctrl)

	var issuedCode string
	otpRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, otp *models.OTP) error {
			issuedCode = otp.Code
			return nil
		})
	mailGW.EXPECT().
		SendOTPEmail(gomock.Any(), "alice@example.com", gomock.Any()).
		Return(false)

	delivery, err := uc.RequestLogin(context.Background(), models.LoginTypeEmail, "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, issuedCode, delivery.DevCode)
}

func TestRequestLogin_SMSDelivered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, otpRepo, _, smsGW := newTestUC(ctrl)

	otpRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	smsGW.EXPECT().SendOTPSMS(gomock.Any(), "9999999999", gomock.Any()).Return(true)

	delivery, err := uc.RequestLogin(context.Background(), models.LoginTypePhone, "9999999999")

	require.NoError(t, err)
	assert.Equal(t, models.LoginTypePhone, delivery.LoginType)
	assert.Empty(t, delivery.DevCode)
}

func TestRequestLogin_SMSFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, otpRepo, _, smsGW := newTestUC(ctrl)

	otpRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	smsGW.EXPECT().SendOTPSMS(gomock.Any(), "9999999999", gomock.Any()).Return(false)

	_, err := uc.RequestLogin(context.Background(), models.LoginTypePhone, "9999999999")

	assert.ErrorIs(t, err, portal.ErrSMSDeliveryFailed)
}

func TestVerifyLogin_InvalidCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, otpRepo, _, _ := newTestUC(ctrl)

	otpRepo.EXPECT().Verify(gomock.Any(), "alice@example.com", "000000").Return(false)

	_, err := uc.VerifyLogin(context.Background(), models.LoginTypeEmail, "alice@example.com", "000000")

	assert.ErrorIs(t, err, portal.ErrInvalidOTP)
}

func TestVerifyLogin_ExistingUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, userRepo, otpRepo, _, _ := newTestUC(ctrl)

	existing := &models.User{ID: 3, Name: "Alice", Email: "alice@example.com"}
	otpRepo.EXPECT().Verify(gomock.Any(), "alice@example.com", "123456").Return(true)
	userRepo.EXPECT().GetByIdentifier(gomock.Any(), "alice@example.com").Return(existing, nil)

	user, err := uc.VerifyLogin(context.Background(), models.LoginTypeEmail, "alice@example.com", "123456")

	require.NoError(t, err)
	assert.Equal(t, 3, user.ID)
	assert.Equal(t, "Alice", user.Name)
}

func TestVerifyLogin_CreatesUserOnFirstLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, userRepo, otpRepo, _, _ := newTestUC(ctrl)

	otpRepo.EXPECT().Verify(gomock.Any(), "alice@example.com", "123456").Return(true)
	userRepo.EXPECT().GetByIdentifier(gomock.Any(), "alice@example.com").Return(nil, portal.ErrUserNotFound)
	userRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, user *models.User) error {
			assert.Equal(t, "New User", user.Name)
			assert.Equal(t, "alice@example.com", user.Email)
			assert.Empty(t, user.Phone)
			assert.True(t, user.IsVerified)
			user.ID = 1
			return nil
		})

	user, err := uc.VerifyLogin(context.Background(), models.LoginTypeEmail, "alice@example.com", "123456")

	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
}

func TestVerifyLogin_CreatesPhoneUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, userRepo, otpRepo, _, _ := newTestUC(ctrl)

	otpRepo.EXPECT().Verify(gomock.Any(), "9999999999", "123456").Return(true)
	userRepo.EXPECT().GetByIdentifier(gomock.Any(), "9999999999").Return(nil, portal.ErrUserNotFound)
	userRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, user *models.User) error {
			assert.Equal(t, "9999999999", user.Phone)
			assert.Empty(t, user.Email)
			return nil
		})

	_, err := uc.VerifyLogin(context.Background(), models.LoginTypePhone, "9999999999", "123456")

	require.NoError(t, err)
}
