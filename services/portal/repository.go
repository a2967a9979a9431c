package portal

import (
	"context"

	"github.com/agrimart/agrimart/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/agrimart/agrimart/services/portal UserRepo,OTPRepo

// UserRepo is the in-memory user store interface. Records live for the
// process lifetime only.
type UserRepo interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByIdentifier(ctx context.Context, identifier string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	List(ctx context.Context) ([]*models.User, error)
}

// OTPRepo is the pending-challenge store interface. At most one live entry
// exists per identifier; expiry is checked lazily on verification.
type OTPRepo interface {
	Create(ctx context.Context, otp *models.OTP) error
	Verify(ctx context.Context, identifier, code string) bool
	Get(ctx context.Context, identifier string) (*models.OTP, bool)
}
