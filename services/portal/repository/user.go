package repository

import (
	"context"
	"sync"

	"github.com/agrimart/agrimart/internal/pkg/models"
	"github.com/agrimart/agrimart/services/portal"
)

// UserRepo is the in-memory user store. It holds both login-created accounts
// and farmer registration records, appended in arrival order and never
// deleted. A single mutex guards the slice against concurrent requests.
type UserRepo struct {
	mu    sync.Mutex
	users []*models.User
}

// NewUserRepo creates an empty user store
func NewUserRepo() *UserRepo {
	return &UserRepo{}
}

// Create appends a record and assigns it the next id (store size + 1)
func (r *UserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = len(r.users) + 1
	stored := *user
	r.users = append(r.users, &stored)
	return nil
}

// GetByID retrieves a user by id
func (r *UserRepo) GetByID(ctx context.Context, id int) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, portal.ErrUserNotFound
}

// GetByIdentifier retrieves the first user whose email or phone exactly
// matches the identifier. The store does not enforce uniqueness, so later
// duplicates are shadowed.
func (r *UserRepo) GetByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if (u.Email != "" && u.Email == identifier) || (u.Phone != "" && u.Phone == identifier) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, portal.ErrUserNotFound
}

// Update replaces the stored record with the same id
func (r *UserRepo) Update(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, u := range r.users {
		if u.ID == user.ID {
			stored := *user
			r.users[i] = &stored
			return nil
		}
	}
	return portal.ErrUserNotFound
}

// List returns all records in arrival order
func (r *UserRepo) List(ctx context.Context) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		copied := *u
		out = append(out, &copied)
	}
	return out, nil
}
