package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/example/jwt-posts-demo/config"
	"github.com/example/jwt-posts-demo/database"
	domain "github.com/example/jwt-posts-demo/domain/user"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"gorm.io/gorm"
)

// AuthModule provides authentication services.
type AuthModule struct {
	db      *gorm.DB
	service *AuthService
	dbCfg   config.Database
	jwtCfg  config.JWT
}

// Compile-time interface checks.
var _ mono.Module = (*AuthModule)(nil)
var _ mono.ServiceProviderModule = (*AuthModule)(nil)
var _ mono.HealthCheckableModule = (*AuthModule)(nil)

// NewModule creates a new AuthModule.
func NewModule(cfg config.Config) *AuthModule {
	return &AuthModule{
		dbCfg:  cfg.Database,
		jwtCfg: cfg.JWT,
	}
}

// NewModuleWithService creates an AuthModule around an existing service.
// Start skips database initialization when a service is injected.
func NewModuleWithService(service *AuthService) *AuthModule {
	return &AuthModule{
		service: service,
	}
}

// Name returns the module name.
func (m *AuthModule) Name() string {
	return "auth"
}

// Start initializes the auth module.
func (m *AuthModule) Start(_ context.Context) error {
	if m.service != nil {
		log.Println("[auth] Module started with injected service")
		return nil
	}

	db, err := database.Open(m.dbCfg)
	if err != nil {
		return err
	}
	m.db = db

	if err := db.AutoMigrate(&domain.User{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	tokens, err := NewTokenService(TokenConfig{
		SecretKey: m.jwtCfg.SecretKey,
		Algorithm: m.jwtCfg.Algorithm,
		TTL:       m.jwtCfg.AccessTokenTTL(),
	})
	if err != nil {
		return fmt.Errorf("failed to create token service: %w", err)
	}

	m.service = NewAuthService(NewUserRepository(db), NewPasswordHasher(), tokens)

	log.Printf("[auth] Module started (driver: %s, algorithm: %s, ttl: %s)",
		database.Driver(m.dbCfg.URL), m.jwtCfg.Algorithm, tokens.TTL())
	return nil
}

// Stop shuts down the module.
func (m *AuthModule) Stop(_ context.Context) error {
	if err := database.Close(m.db); err != nil {
		log.Printf("[auth] %v", err)
	}
	log.Println("[auth] Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *AuthModule) Health(ctx context.Context) mono.HealthStatus {
	if m.service == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "service not initialized",
		}
	}
	if m.db == nil {
		return mono.HealthStatus{
			Healthy: true,
			Message: "operational",
		}
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("failed to get database connection: %v", err),
		}
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("database ping failed: %v", err),
		}
	}

	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"driver": database.Driver(m.dbCfg.URL),
		},
	}
}

// RegisterServices registers request-reply services in the service container.
func (m *AuthModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "signup", json.Unmarshal, json.Marshal, m.handleSignup,
	); err != nil {
		return fmt.Errorf("failed to register signup service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "login", json.Unmarshal, json.Marshal, m.handleLogin,
	); err != nil {
		return fmt.Errorf("failed to register login service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "resolve-token", json.Unmarshal, json.Marshal, m.handleResolveToken,
	); err != nil {
		return fmt.Errorf("failed to register resolve-token service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get-user", json.Unmarshal, json.Marshal, m.handleGetUser,
	); err != nil {
		return fmt.Errorf("failed to register get-user service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "random-user", json.Unmarshal, json.Marshal, m.handleRandomUser,
	); err != nil {
		return fmt.Errorf("failed to register random-user service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "delete-user", json.Unmarshal, json.Marshal, m.handleDeleteUser,
	); err != nil {
		return fmt.Errorf("failed to register delete-user service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "issue-token", json.Unmarshal, json.Marshal, m.handleIssueToken,
	); err != nil {
		return fmt.Errorf("failed to register issue-token service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "verify-token", json.Unmarshal, json.Marshal, m.handleVerifyToken,
	); err != nil {
		return fmt.Errorf("failed to register verify-token service: %w", err)
	}

	log.Printf("[auth] Registered services: services.auth.{signup,login,resolve-token,get-user,random-user,delete-user,issue-token,verify-token}")
	return nil
}

// handleSignup handles user registration.
func (m *AuthModule) handleSignup(ctx context.Context, req SignupRequest, _ *mono.Msg) (UserResponse, error) {
	user, err := m.service.Signup(ctx, req.Email, req.Name, req.Password)
	if err != nil {
		return UserResponse{}, err
	}
	return toUserResponse(user), nil
}

// handleLogin handles user login.
func (m *AuthModule) handleLogin(ctx context.Context, req LoginRequest, _ *mono.Msg) (LoginResponse, error) {
	token, err := m.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		return LoginResponse{}, err
	}
	return LoginResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
	}, nil
}

// handleResolveToken turns a bearer token into the user it names.
func (m *AuthModule) handleResolveToken(ctx context.Context, req TokenRequest, _ *mono.Msg) (UserResponse, error) {
	user, err := m.service.ResolveFromToken(ctx, req.Token)
	if err != nil {
		return UserResponse{}, err
	}
	return toUserResponse(user), nil
}

// handleGetUser handles get user requests.
func (m *AuthModule) handleGetUser(ctx context.Context, req GetUserRequest, _ *mono.Msg) (UserResponse, error) {
	user, err := m.service.GetUser(ctx, req.UserID)
	if err != nil {
		return UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (m *AuthModule) handleRandomUser(ctx context.Context, _ RandomUserRequest, _ *mono.Msg) (UserResponse, error) {
	user, err := m.service.RandomUser(ctx)
	if err != nil {
		return UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (m *AuthModule) handleDeleteUser(ctx context.Context, req DeleteUserRequest, _ *mono.Msg) (DeleteUserResponse, error) {
	if err := m.service.DeleteUser(ctx, req.UserID); err != nil {
		return DeleteUserResponse{Deleted: false, UserID: req.UserID}, err
	}
	return DeleteUserResponse{Deleted: true, UserID: req.UserID}, nil
}

func (m *AuthModule) handleIssueToken(_ context.Context, req IssueTokenRequest, _ *mono.Msg) (IssueTokenResponse, error) {
	token, err := m.service.IssueToken(req.Subject)
	if err != nil {
		return IssueTokenResponse{}, err
	}
	return IssueTokenResponse{Token: token}, nil
}

func (m *AuthModule) handleVerifyToken(_ context.Context, req TokenRequest, _ *mono.Msg) (VerifyTokenResponse, error) {
	subject, err := m.service.VerifyToken(req.Token)
	if err != nil {
		return VerifyTokenResponse{}, err
	}
	return VerifyTokenResponse{Subject: subject}, nil
}
