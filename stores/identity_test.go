package stores

import (
	"context"
	"testing"
	"time"

	"salonbook-backend/models"
	"salonbook-backend/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStoreCreateHashesPassword(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryUserStore()

	user := models.User{Email: "john@example.com", Password: "secret1", Name: "John", Role: "user"}
	require.NoError(t, store.Create(ctx, &user))

	assert.NotEqual(t, "secret1", user.Password)
	assert.True(t, utils.CheckPasswordHash("secret1", user.Password))
}

// The id is the canonical key; the email lookup must resolve to the exact
// same record.
func TestUserStoreLookupsAgree(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryUserStore()

	user := models.User{Email: "anna@example.com", Password: "secret1", Name: "Anna", Role: "admin"}
	require.NoError(t, store.Create(ctx, &user))

	byID, err := store.ByID(ctx, user.ID)
	require.NoError(t, err)

	byEmail, err := store.ByEmail(ctx, "anna@example.com")
	require.NoError(t, err)

	assert.Equal(t, byID.ID, byEmail.ID)
	assert.Equal(t, byID.Email, byEmail.Email)
	assert.Equal(t, byID.Role, byEmail.Role)
}

func TestUserStoreNotFound(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryUserStore()

	_, err := store.ByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.ByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserStoreUpdateLastLogin(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryUserStore()

	user := models.User{Email: "john@example.com", Password: "secret1", Name: "John", Role: "user"}
	require.NoError(t, store.Create(ctx, &user))

	at := time.Date(2024, 12, 25, 9, 0, 0, 0, time.UTC)
	require.NoError(t, store.UpdateLastLogin(ctx, user.ID, at))

	found, err := store.ByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, found.LastLogin)
	assert.Equal(t, at, *found.LastLogin)
}
