package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultSecretKey is only suitable for local development.
// Generate a real one with `jwt-posts-demo -generate-secret`.
const DefaultSecretKey = "dev-secret-key-change-in-production"

// Config contains application configuration. It is loaded once at startup
// and handed to module constructors by value.
type Config struct {
	Server   Server
	Database Database `envPrefix:"DATABASE_"`
	JWT      JWT      `envPrefix:"JWT_"`
	Seed     Seed     `envPrefix:"SEED_"`
}

// Server contains HTTP server parameters.
type Server struct {
	Host  string `env:"HOST" envDefault:"0.0.0.0"`
	Port  int    `env:"PORT" envDefault:"3000"`
	Debug bool   `env:"DEBUG" envDefault:"false"`
}

// Addr returns the listen address for the HTTP server.
func (s Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Database contains database connection parameters.
type Database struct {
	URL     string `env:"URL" envDefault:"sqlite://jwt_posts.db"`
	Logging bool   `env:"LOGGING" envDefault:"false"`
}

// JWT contains token signing parameters.
type JWT struct {
	SecretKey                string `env:"SECRET_KEY" envDefault:"dev-secret-key-change-in-production"`
	Algorithm                string `env:"ALGORITHM" envDefault:"HS256"`
	AccessTokenExpireMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES" envDefault:"30"`
}

// AccessTokenTTL returns the configured access token lifetime.
func (j JWT) AccessTokenTTL() time.Duration {
	return time.Duration(j.AccessTokenExpireMinutes) * time.Minute
}

// Seed contains mock data generation parameters.
type Seed struct {
	Enabled  bool `env:"MOCK_DATA" envDefault:"false"`
	Users    int  `env:"USERS" envDefault:"100"`
	PostsMin int  `env:"POSTS_MIN" envDefault:"20"`
	PostsMax int  `env:"POSTS_MAX" envDefault:"50"`
}

// SupportedAlgorithms lists the signing algorithms accepted in JWT_ALGORITHM.
var SupportedAlgorithms = []any{"HS256", "HS384", "HS512"}

// Load parses configuration from the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses configuration from the given variables instead of the
// process environment.
func LoadFrom(environment map[string]string) (Config, error) {
	return parse(env.Options{Environment: environment})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks configuration values that env parsing cannot.
func (c Config) Validate() error {
	return validation.Errors{
		"server":   c.Server.validate(),
		"database": c.Database.validate(),
		"jwt":      c.JWT.validate(),
		"seed":     c.Seed.validate(),
	}.Filter()
}

func (s Server) validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

func (d Database) validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.URL, validation.Required),
	)
}

func (j JWT) validate() error {
	return validation.ValidateStruct(&j,
		validation.Field(&j.SecretKey, validation.Required),
		validation.Field(&j.Algorithm, validation.Required, validation.In(SupportedAlgorithms...)),
		validation.Field(&j.AccessTokenExpireMinutes, validation.Min(0)),
	)
}

func (s Seed) validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Users, validation.Min(0)),
		validation.Field(&s.PostsMin, validation.Min(0)),
		validation.Field(&s.PostsMax, validation.Min(s.PostsMin)),
	)
}
