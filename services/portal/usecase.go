package portal

import (
	"context"

	"github.com/agrimart/agrimart/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/agrimart/agrimart/services/portal PortalUC

// PortalUC represents the portal usecase interface
type PortalUC interface {
	// OTP login flow
	RequestLogin(ctx context.Context, loginType, identifier string) (*models.OTPDelivery, error)
	VerifyLogin(ctx context.Context, loginType, identifier, code string) (*models.User, error)

	// profile
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	UpdateProfile(ctx context.Context, id int, update *models.ProfileUpdate) (*models.User, error)

	// farmer registration
	RegisterFarmer(ctx context.Context, reg *models.FarmerRegistration) (*models.User, bool, error)
	ListFarmers(ctx context.Context) ([]*models.User, error)
}
