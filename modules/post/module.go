package post

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/example/jwt-posts-demo/config"
	"github.com/example/jwt-posts-demo/database"
	domain "github.com/example/jwt-posts-demo/domain/post"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"gorm.io/gorm"
)

// PostModule provides post storage services via GORM.
type PostModule struct {
	db    *gorm.DB
	repo  *Repository
	dbCfg config.Database
}

// Compile-time interface checks.
var _ mono.Module = (*PostModule)(nil)
var _ mono.ServiceProviderModule = (*PostModule)(nil)
var _ mono.HealthCheckableModule = (*PostModule)(nil)

// NewModule creates a new PostModule.
func NewModule(cfg config.Config) *PostModule {
	return &PostModule{
		dbCfg: cfg.Database,
	}
}

// NewModuleWithDB creates a PostModule over an already open database.
func NewModuleWithDB(db *gorm.DB) *PostModule {
	return &PostModule{
		db: db,
	}
}

// Name returns the module name.
func (m *PostModule) Name() string {
	return "post"
}

// Health performs a health check on the post module.
func (m *PostModule) Health(ctx context.Context) mono.HealthStatus {
	if m.db == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "database not initialized",
		}
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("failed to get sql.DB: %v", err),
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
	}
}

// RegisterServices registers request-reply services in the service container.
// The framework prefixes service names with "services.<module>.", so "create"
// becomes "services.post.create".
func (m *PostModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "create", json.Unmarshal, json.Marshal, m.createPost,
	); err != nil {
		return fmt.Errorf("failed to register create service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "list-by-user", json.Unmarshal, json.Marshal, m.listByUser,
	); err != nil {
		return fmt.Errorf("failed to register list-by-user service: %w", err)
	}

	log.Printf("[post] Registered services: services.post.{create,list-by-user}")
	return nil
}

// Start initializes the database connection and runs migrations.
func (m *PostModule) Start(_ context.Context) error {
	if m.db == nil {
		db, err := database.Open(m.dbCfg)
		if err != nil {
			return err
		}
		m.db = db
	}

	if err := m.db.AutoMigrate(&domain.Post{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	m.repo = NewRepository(m.db)

	log.Println("[post] Module started successfully")
	return nil
}

// Stop gracefully closes the database connection.
func (m *PostModule) Stop(_ context.Context) error {
	if m.dbCfg.URL == "" {
		// Injected database; the owner closes it.
		return nil
	}

	log.Println("[post] Closing database connection...")
	if err := database.Close(m.db); err != nil {
		return err
	}
	log.Println("[post] Database connection closed")
	return nil
}
