package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalid is returned for any token that fails verification:
// bad signature, malformed structure, wrong algorithm, or expiry.
var ErrTokenInvalid = errors.New("invalid token")

// DefaultAccessTokenTTL is the access token lifetime when none is configured.
const DefaultAccessTokenTTL = 30 * time.Minute

// TokenConfig holds the process-wide signing parameters.
type TokenConfig struct {
	SecretKey string
	Algorithm string
	TTL       time.Duration
}

// DefaultTokenConfig returns HS256 with a 30 minute lifetime.
// The secret key must still be provided.
func DefaultTokenConfig(secretKey string) TokenConfig {
	return TokenConfig{
		SecretKey: secretKey,
		Algorithm: jwt.SigningMethodHS256.Alg(),
		TTL:       DefaultAccessTokenTTL,
	}
}

// TokenService issues and verifies signed access tokens whose only custom
// content is the subject claim. Tokens are stateless and cannot be revoked
// before they expire.
type TokenService struct {
	config TokenConfig
	method jwt.SigningMethod
	key    []byte
	now    func() time.Time
}

// NewTokenService creates a TokenService. Only HMAC algorithms are accepted.
func NewTokenService(config TokenConfig) (*TokenService, error) {
	if config.SecretKey == "" {
		return nil, errors.New("token secret key is required")
	}
	if config.TTL < 0 {
		return nil, fmt.Errorf("token ttl must not be negative, got %s", config.TTL)
	}

	method, ok := jwt.GetSigningMethod(config.Algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported token algorithm %q", config.Algorithm)
	}

	return &TokenService{
		config: config,
		method: method,
		key:    []byte(config.SecretKey),
		now:    time.Now,
	}, nil
}

// TTL returns the configured token lifetime.
func (s *TokenService) TTL() time.Duration {
	return s.config.TTL
}

// Issue signs a token for subject with iat = now and exp = now + TTL.
func (s *TokenService) Issue(subject string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TTL)),
	}

	token, err := jwt.NewWithClaims(s.method, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// Verify validates the token and returns its subject.
func (s *TokenService) Verify(tokenString string) (string, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return "", ErrTokenInvalid
	}

	if claims.Subject == "" {
		return "", ErrTokenInvalid
	}
	return claims.Subject, nil
}
