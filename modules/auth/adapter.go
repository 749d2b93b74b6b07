package auth

import (
	"context"
	"encoding/json"
	"fmt"

	domain "github.com/example/jwt-posts-demo/domain/user"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// AuthPort defines the interface for authentication operations.
// This is the port that other modules use to access auth functionality.
type AuthPort interface {
	Signup(ctx context.Context, req SignupRequest) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.AccessToken, error)
	ResolveToken(ctx context.Context, token string) (*domain.User, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string) error
	RandomUser(ctx context.Context) (*domain.User, error)
	IssueToken(ctx context.Context, subject string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
}

// AuthAdapter implements AuthPort using the service container.
type AuthAdapter struct {
	container mono.ServiceContainer
}

var _ AuthPort = (*AuthAdapter)(nil)

// NewAuthAdapter creates a new AuthAdapter.
func NewAuthAdapter(container mono.ServiceContainer) *AuthAdapter {
	return &AuthAdapter{
		container: container,
	}
}

// Signup registers a new user.
func (a *AuthAdapter) Signup(ctx context.Context, req SignupRequest) (*domain.User, error) {
	var resp UserResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"signup",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("signup request failed: %w", err)
	}
	return resp.toUser(), nil
}

// Login exchanges credentials for a bearer token.
func (a *AuthAdapter) Login(ctx context.Context, email, password string) (*domain.AccessToken, error) {
	req := LoginRequest{Email: email, Password: password}
	var resp LoginResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"login",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &domain.AccessToken{
		AccessToken: resp.AccessToken,
		TokenType:   resp.TokenType,
	}, nil
}

// ResolveToken returns the user a bearer token belongs to.
func (a *AuthAdapter) ResolveToken(ctx context.Context, token string) (*domain.User, error) {
	req := TokenRequest{Token: token}
	var resp UserResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"resolve-token",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("resolve-token request failed: %w", err)
	}
	return resp.toUser(), nil
}

// GetUser retrieves a user by ID.
func (a *AuthAdapter) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	req := GetUserRequest{UserID: userID}
	var resp UserResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"get-user",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("get-user request failed: %w", err)
	}
	return resp.toUser(), nil
}

// DeleteUser removes an account by ID.
func (a *AuthAdapter) DeleteUser(ctx context.Context, userID string) error {
	req := DeleteUserRequest{UserID: userID}
	var resp DeleteUserResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"delete-user",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return fmt.Errorf("delete-user request failed: %w", err)
	}
	return nil
}

// RandomUser returns any stored user.
func (a *AuthAdapter) RandomUser(ctx context.Context) (*domain.User, error) {
	req := RandomUserRequest{}
	var resp UserResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"random-user",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("random-user request failed: %w", err)
	}
	return resp.toUser(), nil
}

// IssueToken signs a token for subject.
func (a *AuthAdapter) IssueToken(ctx context.Context, subject string) (string, error) {
	req := IssueTokenRequest{Subject: subject}
	var resp IssueTokenResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"issue-token",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return "", fmt.Errorf("issue-token request failed: %w", err)
	}
	return resp.Token, nil
}

// VerifyToken returns the subject of a valid token.
func (a *AuthAdapter) VerifyToken(ctx context.Context, token string) (string, error) {
	req := TokenRequest{Token: token}
	var resp VerifyTokenResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"verify-token",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return "", fmt.Errorf("verify-token request failed: %w", err)
	}
	return resp.Subject, nil
}
