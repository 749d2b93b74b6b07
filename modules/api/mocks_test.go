package api

import (
	"context"
	"errors"
	"time"

	postdomain "github.com/example/jwt-posts-demo/domain/post"
	domain "github.com/example/jwt-posts-demo/domain/user"
	"github.com/example/jwt-posts-demo/modules/auth"
)

var errNotImplemented = errors.New("not implemented")

// mockAuthPort implements auth.AuthPort for testing.
type mockAuthPort struct {
	signupFunc       func(ctx context.Context, req auth.SignupRequest) (*domain.User, error)
	loginFunc        func(ctx context.Context, email, password string) (*domain.AccessToken, error)
	resolveTokenFunc func(ctx context.Context, token string) (*domain.User, error)
	getUserFunc      func(ctx context.Context, userID string) (*domain.User, error)
	deleteUserFunc   func(ctx context.Context, userID string) error
	randomUserFunc   func(ctx context.Context) (*domain.User, error)
	issueTokenFunc   func(ctx context.Context, subject string) (string, error)
	verifyTokenFunc  func(ctx context.Context, token string) (string, error)
}

func (m *mockAuthPort) Signup(ctx context.Context, req auth.SignupRequest) (*domain.User, error) {
	if m.signupFunc != nil {
		return m.signupFunc(ctx, req)
	}
	return nil, errNotImplemented
}

func (m *mockAuthPort) Login(ctx context.Context, email, password string) (*domain.AccessToken, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, email, password)
	}
	return nil, errNotImplemented
}

func (m *mockAuthPort) ResolveToken(ctx context.Context, token string) (*domain.User, error) {
	if m.resolveTokenFunc != nil {
		return m.resolveTokenFunc(ctx, token)
	}
	return nil, errNotImplemented
}

func (m *mockAuthPort) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	if m.getUserFunc != nil {
		return m.getUserFunc(ctx, userID)
	}
	return nil, errNotImplemented
}

func (m *mockAuthPort) DeleteUser(ctx context.Context, userID string) error {
	if m.deleteUserFunc != nil {
		return m.deleteUserFunc(ctx, userID)
	}
	return errNotImplemented
}

func (m *mockAuthPort) RandomUser(ctx context.Context) (*domain.User, error) {
	if m.randomUserFunc != nil {
		return m.randomUserFunc(ctx)
	}
	return nil, errNotImplemented
}

func (m *mockAuthPort) IssueToken(ctx context.Context, subject string) (string, error) {
	if m.issueTokenFunc != nil {
		return m.issueTokenFunc(ctx, subject)
	}
	return "", errNotImplemented
}

func (m *mockAuthPort) VerifyToken(ctx context.Context, token string) (string, error) {
	if m.verifyTokenFunc != nil {
		return m.verifyTokenFunc(ctx, token)
	}
	return "", errNotImplemented
}

// mockPostPort implements post.PostPort for testing.
type mockPostPort struct {
	listByUserFunc func(ctx context.Context, userID string) ([]*postdomain.Post, error)
}

func (m *mockPostPort) ListByUser(ctx context.Context, userID string) ([]*postdomain.Post, error) {
	if m.listByUserFunc != nil {
		return m.listByUserFunc(ctx, userID)
	}
	return nil, errNotImplemented
}

func (m *mockPostPort) Create(context.Context, string, string, string, time.Time) (*postdomain.Post, error) {
	return nil, errNotImplemented
}

var testUser = &domain.User{
	ID:        "user-123",
	Email:     "jane@example.com",
	Name:      "Jane",
	CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	UpdatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
}

// resolvesTo returns a ResolveToken stub that accepts only "valid-token".
func resolvesTo(user *domain.User) func(context.Context, string) (*domain.User, error) {
	return func(_ context.Context, token string) (*domain.User, error) {
		if token != "valid-token" {
			return nil, errors.New("resolve-token request failed: " + domain.ErrUnauthorized.Error())
		}
		return user, nil
	}
}
