package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrimart/agrimart/internal/pkg/models"
	"github.com/agrimart/agrimart/services/portal"
)

func TestUserCreate_AssignsSequentialIDs(t *testing.T) {
	repo := NewUserRepo()
	ctx := context.Background()

	first := &models.User{Name: "Ravi", Mobile: "9999999999"}
	second := &models.User{Name: "Sita", Mobile: "8888888888"}

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
}

func TestUserGetByID(t *testing.T) {
	repo := NewUserRepo()
	ctx := context.Background()

	user := &models.User{Name: "Ravi", CropType: "Rice", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, user))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ravi", got.Name)
	assert.Equal(t, "Rice", got.CropType)

	// Mutating the returned copy must not leak into the store
	got.Name = "changed"
	again, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ravi", again.Name)
}

func TestUserGetByID_NotFound(t *testing.T) {
	repo := NewUserRepo()

	_, err := repo.GetByID(context.Background(), 42)

	assert.ErrorIs(t, err, portal.ErrUserNotFound)
}

func TestUserGetByIdentifier(t *testing.T) {
	repo := NewUserRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Name: "Alice", Email: "alice@example.com"}))
	require.NoError(t, repo.Create(ctx, &models.User{Name: "Bob", Phone: "9999999999"}))

	byEmail, err := repo.GetByIdentifier(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", byEmail.Name)

	byPhone, err := repo.GetByIdentifier(ctx, "9999999999")
	require.NoError(t, err)
	assert.Equal(t, "Bob", byPhone.Name)

	_, err = repo.GetByIdentifier(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, portal.ErrUserNotFound)
}

func TestUserGetByIdentifier_FirstMatchWins(t *testing.T) {
	repo := NewUserRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Name: "First", Email: "dup@example.com"}))
	require.NoError(t, repo.Create(ctx, &models.User{Name: "Second", Email: "dup@example.com"}))

	got, err := repo.GetByIdentifier(ctx, "dup@example.com")
	require.NoError(t, err)
	assert.Equal(t, "First", got.Name)
}

func TestUserGetByIdentifier_EmptyFieldsNeverMatch(t *testing.T) {
	repo := NewUserRepo()
	ctx := context.Background()

	// A farmer record has neither email nor phone set
	require.NoError(t, repo.Create(ctx, &models.User{Name: "Ravi", Mobile: "9999999999"}))

	_, err := repo.GetByIdentifier(ctx, "")
	assert.ErrorIs(t, err, portal.ErrUserNotFound)
}

func TestUserUpdate(t *testing.T) {
	repo := NewUserRepo()
	ctx := context.Background()

	user := &models.User{Name: "Ravi"}
	require.NoError(t, repo.Create(ctx, user))

	user.Location = "Pune"
	user.FarmType = "Organic"
	require.NoError(t, repo.Update(ctx, user))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pune", got.Location)
	assert.Equal(t, "Organic", got.FarmType)
}

func TestUserUpdate_NotFound(t *testing.T) {
	repo := NewUserRepo()

	err := repo.Update(context.Background(), &models.User{ID: 7, Name: "Ghost"})

	assert.ErrorIs(t, err, portal.ErrUserNotFound)
}

func TestUserList_ArrivalOrder(t *testing.T) {
	repo := NewUserRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Name: "Ravi"}))
	require.NoError(t, repo.Create(ctx, &models.User{Name: "Sita"}))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Ravi", users[0].Name)
	assert.Equal(t, "Sita", users[1].Name)
}
