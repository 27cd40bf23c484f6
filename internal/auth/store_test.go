package auth_test

import (
	"context"
	"strings"
	"testing"

	"github.com/mauv0809/courtside/internal/auth"
	"github.com/mauv0809/courtside/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (auth.UserStore, func()) {
	t.Helper()
	db, teardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)
	return auth.New(db), teardown
}

func TestCreateAndAuthenticate(t *testing.T) {
	users, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	created, err := users.CreateUser(ctx, " coach ", "hoops123", auth.RoleAdmin)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "coach", created.Username)
	assert.NotEqual(t, "hoops123", created.PasswordHash)

	t.Run("get", func(t *testing.T) {
		u, err := users.GetUser(ctx, "coach")
		require.NoError(t, err)
		assert.Equal(t, created.ID, u.ID)
		assert.Equal(t, auth.RoleAdmin, u.Role)
		assert.Equal(t, created.CreatedAt, u.CreatedAt)

		_, err = users.GetUser(ctx, "nobody")
		assert.ErrorIs(t, err, auth.ErrUserNotFound)
	})

	t.Run("authenticate", func(t *testing.T) {
		u, err := users.Authenticate(ctx, "coach", "hoops123")
		require.NoError(t, err)
		assert.Equal(t, "coach", u.Username)

		_, err = users.Authenticate(ctx, "coach", "wrong-pass")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

		_, err = users.Authenticate(ctx, "nobody", "hoops123")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := users.CreateUser(ctx, "coach", "another1", auth.RoleViewer)
		assert.ErrorIs(t, err, auth.ErrUserExists)
	})
}

func TestCreateUserValidation(t *testing.T) {
	users, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	testCases := []struct {
		name     string
		username string
		password string
		role     auth.Role
	}{
		{"short username", "ab", "hoops123", auth.RoleViewer},
		{"long username", strings.Repeat("a", 51), "hoops123", auth.RoleViewer},
		{"short password", "coach", "12345", auth.RoleViewer},
		{"unknown role", "coach", "hoops123", auth.Role("owner")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := users.CreateUser(ctx, tc.username, tc.password, tc.role)
			assert.ErrorIs(t, err, auth.ErrInvalidUser)
		})
	}
}

func TestPasswordHashing(t *testing.T) {
	long := strings.Repeat("x", 100)
	hash, err := auth.HashPassword(long)
	require.NoError(t, err)
	assert.True(t, auth.VerifyPassword(long, hash))
	// Differs only past the 72nd byte.
	assert.False(t, auth.VerifyPassword(long[:99]+"y", hash))
}
