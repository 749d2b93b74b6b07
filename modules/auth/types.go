package auth

import (
	"time"

	domain "github.com/example/jwt-posts-demo/domain/user"
)

// SignupRequest represents a user registration request.
type SignupRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents a user login response.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// TokenRequest carries a token to resolve or verify.
type TokenRequest struct {
	Token string `json:"token"`
}

// IssueTokenRequest carries the subject to sign a token for.
type IssueTokenRequest struct {
	Subject string `json:"subject"`
}

// IssueTokenResponse carries a freshly signed token.
type IssueTokenResponse struct {
	Token string `json:"token"`
}

// VerifyTokenResponse carries the subject of a verified token.
type VerifyTokenResponse struct {
	Subject string `json:"subject"`
}

// GetUserRequest represents a get user request.
type GetUserRequest struct {
	UserID string `json:"user_id"`
}

// RandomUserRequest asks for any stored user.
type RandomUserRequest struct{}

// DeleteUserRequest represents a delete user request.
type DeleteUserRequest struct {
	UserID string `json:"user_id"`
}

// DeleteUserResponse reports a deletion.
type DeleteUserResponse struct {
	Deleted bool   `json:"deleted"`
	UserID  string `json:"user_id"`
}

// UserResponse is the public view of a user. It never carries the hash.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func (r UserResponse) toUser() *domain.User {
	return &domain.User{
		ID:        r.ID,
		Email:     r.Email,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
