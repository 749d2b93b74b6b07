package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/example/jwt-posts-demo/config"
	"github.com/example/jwt-posts-demo/database"
	"github.com/example/jwt-posts-demo/modules/api"
	"github.com/example/jwt-posts-demo/modules/auth"
	"github.com/example/jwt-posts-demo/modules/post"
	"github.com/example/jwt-posts-demo/modules/seed"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	generateSecret := flag.Bool("generate-secret", false, "print a random JWT secret key and exit")
	flag.Parse()

	if *generateSecret {
		secret, err := config.GenerateSecret(32)
		if err != nil {
			log.Fatalf("Failed to generate secret: %v", err)
		}
		fmt.Printf("JWT_SECRET_KEY=%s\n", secret)
		return
	}

	log.Println("=== JWT Posts Demo ===")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.JWT.SecretKey == config.DefaultSecretKey {
		log.Println("WARNING: using the default JWT secret key; set JWT_SECRET_KEY in production")
	}

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(logLevel(cfg.Server)),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Order: independent modules first, then dependent modules
	app.Register(auth.NewModule(cfg))
	app.Register(post.NewModule(cfg))
	apiModule := api.NewModule(cfg)
	apiModule.SetHealthReporter(app)
	app.Register(apiModule)
	if cfg.Seed.Enabled {
		app.Register(seed.NewModule(cfg.Seed))
	}

	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo(cfg)

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

// logLevel selects the framework log level; DEBUG=true turns on debug output.
func logLevel(server config.Server) mono.LogLevel {
	if server.Debug {
		return mono.LogLevelDebug
	}
	return mono.LogLevelInfo
}

func printStartupInfo(cfg config.Config) {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Printf("  Database:  %s", database.Driver(cfg.Database.URL))
	log.Printf("  Algorithm: %s, token TTL: %s", cfg.JWT.Algorithm, cfg.JWT.AccessTokenTTL())
	if cfg.Seed.Enabled {
		log.Printf("  Seeding %d users in the background (password: %s)", cfg.Seed.Users, seed.DefaultPassword)
	}
	log.Println("")
	log.Printf("REST API Endpoints (http://%s):", cfg.Server.Addr())
	log.Println("")
	log.Println("  Public Endpoints:")
	log.Println("  GET    /                  - Welcome message")
	log.Println("  POST   /signup            - Register a new user (also /users/signup)")
	log.Println("  POST   /token             - Login with username/password (also /users/token)")
	log.Println("  GET    /random            - Random user with a fresh token and their posts")
	log.Println("  GET    /health            - Health check")
	log.Println("")
	log.Println("  Protected Endpoints (require Bearer token):")
	log.Println("  GET    /users/me          - Current user")
	log.Println("  GET    /users/me/posts    - Current user's posts")
	log.Println("  DELETE /users/me          - Delete the current account")
	log.Println("  GET    /users/:id         - Look up a user by ID")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
