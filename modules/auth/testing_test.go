package auth

import (
	"testing"

	"github.com/example/jwt-posts-demo/config"
	"github.com/example/jwt-posts-demo/database"
	domain "github.com/example/jwt-posts-demo/domain/user"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(config.Database{URL: ":memory:"})
	require.NoError(t, err, "failed to open test database")

	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, db.AutoMigrate(&domain.User{}), "failed to migrate test database")
	return db
}

// newTestService wires a service over a fresh database with a cheap hash cost.
func newTestService(t *testing.T) (*AuthService, *UserRepository, *TokenService) {
	t.Helper()

	repo := NewUserRepository(setupTestDB(t))
	tokens := newTestTokenService(t, DefaultTokenConfig("test-secret-key"))
	return NewAuthService(repo, NewPasswordHasherWithCost(bcrypt.MinCost), tokens), repo, tokens
}
