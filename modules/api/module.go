package api

import (
	"context"
	"fmt"
	"log"

	"github.com/example/jwt-posts-demo/config"
	"github.com/example/jwt-posts-demo/modules/auth"
	"github.com/example/jwt-posts-demo/modules/post"
	"github.com/go-monolith/mono"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// HealthReporter reports the aggregated health of the running application.
// mono.MonoApplication satisfies it.
type HealthReporter interface {
	Health(ctx context.Context) mono.FrameworkHealth
}

// APIModule is the HTTP API module.
type APIModule struct {
	app         *fiber.App
	server      config.Server
	authAdapter auth.AuthPort
	postAdapter post.PostPort
	health      HealthReporter
}

// Compile-time interface checks.
var _ mono.Module = (*APIModule)(nil)
var _ mono.DependentModule = (*APIModule)(nil)
var _ mono.HealthCheckableModule = (*APIModule)(nil)

// NewModule creates a new APIModule.
func NewModule(cfg config.Config) *APIModule {
	return &APIModule{
		server: cfg.Server,
	}
}

// NewModuleWithPorts creates an APIModule wired to the given ports instead
// of the service containers handed over by the framework.
func NewModuleWithPorts(cfg config.Config, authAdapter auth.AuthPort, postAdapter post.PostPort) *APIModule {
	return &APIModule{
		server:      cfg.Server,
		authAdapter: authAdapter,
		postAdapter: postAdapter,
	}
}

// SetHealthReporter makes GET /health report the whole application instead
// of this module alone.
func (m *APIModule) SetHealthReporter(reporter HealthReporter) {
	m.health = reporter
}

// Name returns the module name.
func (m *APIModule) Name() string {
	return "api"
}

// Dependencies returns the list of module dependencies.
func (m *APIModule) Dependencies() []string {
	return []string{"auth", "post"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *APIModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	switch dependency {
	case "auth":
		m.authAdapter = auth.NewAuthAdapter(container)
	case "post":
		m.postAdapter = post.NewPostAdapter(container)
	}
}

// Start initializes the Fiber HTTP server.
func (m *APIModule) Start(_ context.Context) error {
	if m.authAdapter == nil {
		return fmt.Errorf("auth dependency not set")
	}
	if m.postAdapter == nil {
		return fmt.Errorf("post dependency not set")
	}

	m.app = m.newApp()

	addr := m.server.Addr()
	go func() {
		if err := m.app.Listen(addr); err != nil {
			log.Printf("[api] HTTP server error: %v", err)
		}
	}()

	log.Printf("[api] HTTP server started on %s", addr)
	return nil
}

// Stop shuts down the Fiber HTTP server.
func (m *APIModule) Stop(_ context.Context) error {
	if m.app == nil {
		return nil
	}
	log.Println("[api] Shutting down HTTP server...")
	return m.app.Shutdown()
}

// Health returns the health status of the module.
func (m *APIModule) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: m.app != nil,
		Message: "operational",
		Details: map[string]any{
			"addr": m.server.Addr(),
		},
	}
}

// newApp builds the Fiber app with middleware and routes but does not listen.
func (m *APIModule) newApp() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          customErrorHandler,
	})

	app.Use(recover.New())
	if m.server.Debug {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
		}))
	}
	app.Use(cors.New())

	m.setupRoutes(app)
	return app
}

// setupRoutes configures all API routes.
func (m *APIModule) setupRoutes(app *fiber.App) {
	handlers := NewHandlers(m.authAdapter, m.postAdapter)
	requireUser := AuthMiddleware(m.authAdapter)

	app.Get("/health", m.handleHealth)

	app.Get("/", handlers.Root)
	app.Get("/random", handlers.Random)

	app.Post("/signup", handlers.Signup)
	app.Post("/token", handlers.Token)

	users := app.Group("/users")
	users.Post("/signup", handlers.Signup)
	users.Post("/token", handlers.Token)
	users.Get("/me", requireUser, handlers.Me)
	users.Get("/me/posts", requireUser, handlers.MyPosts)
	users.Delete("/me", requireUser, handlers.DeleteMe)
	users.Get("/:id", requireUser, handlers.UserByID)

	// Registered last so it only sees paths nothing else matched.
	app.Get("/*", handlers.Echo)
}

// handleHealth reports module health, 503 when anything is unhealthy.
func (m *APIModule) handleHealth(c *fiber.Ctx) error {
	if m.health == nil {
		status := m.Health(c.UserContext())
		code := fiber.StatusOK
		if !status.Healthy {
			code = fiber.StatusServiceUnavailable
		}
		return c.Status(code).JSON(fiber.Map{
			"healthy": status.Healthy,
			"modules": map[string]mono.HealthStatus{m.Name(): status},
		})
	}

	report := m.health.Health(c.UserContext())
	code := fiber.StatusOK
	if !report.Healthy {
		code = fiber.StatusServiceUnavailable
	}
	return c.Status(code).JSON(report)
}

// customErrorHandler handles Fiber errors.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(ErrorResponse{
		Error:   "server_error",
		Message: message,
	})
}
