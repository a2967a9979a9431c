package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrimart/agrimart/internal/pkg/models"
)

func newTestOTPRepo() *OTPRepo {
	cfg := &models.Config{
		OTP: models.OTPConfig{
			Length:        6,
			ExpiryMinutes: 10,
			MaxAttempts:   3,
		},
	}
	return NewOTPRepo(cfg)
}

func TestOTPVerify_NeverIssued(t *testing.T) {
	repo := newTestOTPRepo()

	ok := repo.Verify(context.Background(), "alice@example.com", "123456")

	assert.False(t, ok)
}

func TestOTPVerify_CorrectCodeSucceedsOnce(t *testing.T) {
	repo := newTestOTPRepo()
	ctx := context.Background()

	err := repo.Create(ctx, &models.OTP{
		Identifier: "alice@example.com",
		Code:       "123456",
		IssuedAt:   time.Now(),
	})
	require.NoError(t, err)

	assert.True(t, repo.Verify(ctx, "alice@example.com", "123456"))

	// Entry is consumed; replaying the same code fails
	assert.False(t, repo.Verify(ctx, "alice@example.com", "123456"))
}

func TestOTPVerify_WrongCodeKeepsEntry(t *testing.T) {
	repo := newTestOTPRepo()
	ctx := context.Background()

	err := repo.Create(ctx, &models.OTP{
		Identifier: "alice@example.com",
		Code:       "123456",
		IssuedAt:   time.Now(),
	})
	require.NoError(t, err)

	assert.False(t, repo.Verify(ctx, "alice@example.com", "000000"))

	entry, found := repo.Get(ctx, "alice@example.com")
	require.True(t, found)
	assert.Equal(t, 1, entry.Attempts)

	// The correct code still works on the next attempt
	assert.True(t, repo.Verify(ctx, "alice@example.com", "123456"))
}

func TestOTPVerify_AttemptCeiling(t *testing.T) {
	repo := newTestOTPRepo()
	ctx := context.Background()

	err := repo.Create(ctx, &models.OTP{
		Identifier: "alice@example.com",
		Code:       "123456",
		IssuedAt:   time.Now(),
	})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.False(t, repo.Verify(ctx, "alice@example.com", "000000"))
	}

	// The ceiling was reached, so even the correct code is rejected and
	// the entry is removed.
	assert.False(t, repo.Verify(ctx, "alice@example.com", "123456"))

	_, found := repo.Get(ctx, "alice@example.com")
	assert.False(t, found)
}

func TestOTPVerify_Expired(t *testing.T) {
	repo := newTestOTPRepo()
	ctx := context.Background()

	err := repo.Create(ctx, &models.OTP{
		Identifier: "alice@example.com",
		Code:       "123456",
		IssuedAt:   time.Now().Add(-11 * time.Minute),
	})
	require.NoError(t, err)

	assert.False(t, repo.Verify(ctx, "alice@example.com", "123456"))

	_, found := repo.Get(ctx, "alice@example.com")
	assert.False(t, found)
}

func TestOTPCreate_OverwritesPriorChallenge(t *testing.T) {
	repo := newTestOTPRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.OTP{
		Identifier: "alice@example.com",
		Code:       "111111",
		IssuedAt:   time.Now(),
	}))
	require.NoError(t, repo.Create(ctx, &models.OTP{
		Identifier: "alice@example.com",
		Code:       "222222",
		IssuedAt:   time.Now(),
	}))

	assert.False(t, repo.Verify(ctx, "alice@example.com", "111111"))
	assert.True(t, repo.Verify(ctx, "alice@example.com", "222222"))
}
