package usecase

import (
	"context"
	"fmt"

	"github.com/agrimart/agrimart/internal/pkg/models"
)

// UpdateProfile applies the submitted profile fields to the user record.
// Blank fields keep the stored values.
func (u *PortalUC) UpdateProfile(ctx context.Context, id int, update *models.ProfileUpdate) (*models.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != "" {
		user.Name = update.Name
	}
	if update.Phone != "" {
		user.Phone = update.Phone
	}
	if update.Location != "" {
		user.Location = update.Location
	}
	if update.FarmType != "" {
		user.FarmType = update.FarmType
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}
