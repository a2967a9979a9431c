package repository

import (
	"context"
	"sync"
	"time"

	"github.com/agrimart/agrimart/internal/pkg/models"
)

// OTPRepo stores pending login challenges keyed by identifier. Expiry is
// checked lazily when a verification attempt arrives; entries are never
// swept in the background.
type OTPRepo struct {
	mu          sync.Mutex
	entries     map[string]*models.OTP
	expiry      time.Duration
	maxAttempts int
}

// NewOTPRepo creates an empty challenge store with the configured expiry
// window and attempt ceiling.
func NewOTPRepo(cfg *models.Config) *OTPRepo {
	return &OTPRepo{
		entries:     make(map[string]*models.OTP),
		expiry:      time.Duration(cfg.OTP.ExpiryMinutes) * time.Minute,
		maxAttempts: cfg.OTP.MaxAttempts,
	}
}

// Create stores a challenge, overwriting any prior entry for the identifier
func (r *OTPRepo) Create(ctx context.Context, otp *models.OTP) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *otp
	r.entries[otp.Identifier] = &stored
	return nil
}

// Verify runs the challenge state machine for one submitted code. The check
// order is load-bearing: expiry, then the attempt ceiling, then the
// increment, then the comparison. The attempt that reaches the ceiling is
// rejected even when the code is correct.
func (r *OTPRepo) Verify(ctx context.Context, identifier, code string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[identifier]
	if !ok {
		return false
	}

	if time.Since(entry.IssuedAt) > r.expiry {
		delete(r.entries, identifier)
		return false
	}

	if entry.Attempts >= r.maxAttempts {
		delete(r.entries, identifier)
		return false
	}

	entry.Attempts++

	if entry.Code == code {
		delete(r.entries, identifier)
		return true
	}
	return false
}

// Get returns a copy of the pending entry for the identifier, if any
func (r *OTPRepo) Get(ctx context.Context, identifier string) (*models.OTP, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[identifier]
	if !ok {
		return nil, false
	}
	copied := *entry
	return &copied, true
}
