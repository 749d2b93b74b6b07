package auth

import (
	"context"
	"testing"
	"time"

	domain "github.com/example/jwt-posts-demo/domain/user"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(email string) *domain.User {
	now := time.Now()
	return &domain.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         "Test User",
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderplace",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestUserRepository_Save(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(setupTestDB(t))

	user := newTestUser("a@x.com")
	require.NoError(t, repo.Save(ctx, user))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, found.Email)
	assert.Equal(t, user.Name, found.Name)
	assert.Equal(t, user.PasswordHash, found.PasswordHash)
}

func TestUserRepository_SaveDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(setupTestDB(t))

	require.NoError(t, repo.Save(ctx, newTestUser("a@x.com")))

	err := repo.Save(ctx, newTestUser("a@x.com"))
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestUserRepository_EmailIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(setupTestDB(t))

	require.NoError(t, repo.Save(ctx, newTestUser("Jane@Example.com")))

	_, err := repo.FindByEmail(ctx, "jane@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	found, err := repo.FindByEmail(ctx, "Jane@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "Jane@Example.com", found.Email)
}

func TestUserRepository_Find(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(setupTestDB(t))

	user := newTestUser("find@example.com")
	require.NoError(t, repo.Save(ctx, user))

	t.Run("by email", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "find@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
	})

	t.Run("missing email", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, "non-existent-id")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("email exists", func(t *testing.T) {
		exists, err := repo.EmailExists(ctx, "find@example.com")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.EmailExists(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestUserRepository_ListAll(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(setupTestDB(t))

	users, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		require.NoError(t, repo.Save(ctx, newTestUser(email)))
	}

	users, err = repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)
}

func TestUserRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(setupTestDB(t))

	user := newTestUser("gone@example.com")
	require.NoError(t, repo.Save(ctx, user))

	require.NoError(t, repo.Delete(ctx, user.ID))

	_, err := repo.FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	err = repo.Delete(ctx, user.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	// The email is free again after a hard delete.
	require.NoError(t, repo.Save(ctx, newTestUser("gone@example.com")))
}
