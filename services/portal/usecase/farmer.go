package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/agrimart/agrimart/internal/pkg/logger"
	"github.com/agrimart/agrimart/internal/pkg/models"
	"github.com/agrimart/agrimart/services/portal"
)

// RegisterFarmer validates and stores a farmer registration, then attempts
// the admin notification email. The returned bool reports whether the
// notification went out; a failed notification never rolls back the record.
func (u *PortalUC) RegisterFarmer(ctx context.Context, reg *models.FarmerRegistration) (*models.User, bool, error) {
	if reg.Name == "" || reg.Mobile == "" || reg.CropType == "" || reg.CropDescription == "" {
		return nil, false, portal.ErrMissingFields
	}

	user := &models.User{
		Name:            reg.Name,
		Mobile:          reg.Mobile,
		CropType:        reg.CropType,
		CropDescription: reg.CropDescription,
		CreatedAt:       time.Now(),
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, false, fmt.Errorf("failed to store farmer record: %w", err)
	}

	notified := u.mailGW.SendFarmerNotification(ctx, user)
	if !notified {
		logger.Warn("Admin notification email failed, record kept",
			logger.String("farmer", reg.Name),
			logger.Int("user_id", user.ID))
	}

	return user, notified, nil
}

// ListFarmers returns every record in the user store in arrival order
func (u *PortalUC) ListFarmers(ctx context.Context) ([]*models.User, error) {
	return u.userRepo.List(ctx)
}
