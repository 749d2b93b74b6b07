package auth

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	domain "github.com/example/jwt-posts-demo/domain/user"
	"github.com/google/uuid"
)

// AuthService handles authentication business logic.
type AuthService struct {
	users  UserStore
	hasher *PasswordHasher
	tokens *TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, hasher *PasswordHasher, tokens *TokenService) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// ValidateCredentials returns the user only when email and password match.
// An unknown email and a wrong password both yield (nil, nil); only store
// failures produce an error.
func (s *AuthService) ValidateCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.hasher.VerifyDummy(password)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, nil
	}
	return user, nil
}

// CreateAccessToken issues a token whose subject is the user's email.
func (s *AuthService) CreateAccessToken(user *domain.User) (string, error) {
	return s.tokens.Issue(user.Email)
}

// ResolveFromToken verifies the token and loads the user it names.
// Any failure, including a subject that no longer exists, is ErrUnauthorized.
func (s *AuthService) ResolveFromToken(ctx context.Context, token string) (*domain.User, error) {
	email, err := s.tokens.Verify(token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// Signup creates a new user account.
func (s *AuthService) Signup(ctx context.Context, email, name, password string) (*domain.User, error) {
	if len(password) > MaxPasswordBytes {
		return nil, domain.ErrPasswordTooLong
	}

	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, domain.ErrUserExists
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// A concurrent signup can still win the race; Save reports ErrUserExists.
	if err := s.users.Save(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login validates credentials and returns a bearer token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.AccessToken, error) {
	user, err := s.ValidateCredentials(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.CreateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &domain.AccessToken{
		AccessToken: token,
		TokenType:   domain.TokenTypeBearer,
	}, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

// RandomUser picks one stored user uniformly at random.
func (s *AuthService) RandomUser(ctx context.Context) (*domain.User, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, domain.ErrNoUsers
	}
	return users[rand.IntN(len(users))], nil
}

// DeleteUser removes an account. Tokens already issued for it stop resolving.
func (s *AuthService) DeleteUser(ctx context.Context, userID string) error {
	return s.users.Delete(ctx, userID)
}

// IssueToken signs a token for an arbitrary subject.
func (s *AuthService) IssueToken(subject string) (string, error) {
	return s.tokens.Issue(subject)
}

// VerifyToken returns the subject of a valid token.
func (s *AuthService) VerifyToken(token string) (string, error) {
	return s.tokens.Verify(token)
}
