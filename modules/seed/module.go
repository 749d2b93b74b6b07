package seed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"sync"

	"github.com/example/jwt-posts-demo/config"
	"github.com/example/jwt-posts-demo/modules/auth"
	"github.com/example/jwt-posts-demo/modules/post"
	"github.com/go-monolith/mono"
)

// SeedModule generates mock data in the background once auth and post are up.
type SeedModule struct {
	opts        Options
	authAdapter auth.AuthPort
	postAdapter post.PostPort

	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	summary Summary
	err     error
	done    bool
}

// Compile-time interface checks.
var _ mono.Module = (*SeedModule)(nil)
var _ mono.DependentModule = (*SeedModule)(nil)
var _ mono.HealthCheckableModule = (*SeedModule)(nil)

// NewModule creates a new SeedModule.
func NewModule(cfg config.Seed) *SeedModule {
	return &SeedModule{
		opts: Options{
			Users:    cfg.Users,
			PostsMin: cfg.PostsMin,
			PostsMax: cfg.PostsMax,
		},
	}
}

// Name returns the module name.
func (m *SeedModule) Name() string {
	return "seed"
}

// Dependencies returns the list of module dependencies.
func (m *SeedModule) Dependencies() []string {
	return []string{"auth", "post"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *SeedModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	switch dependency {
	case "auth":
		m.authAdapter = auth.NewAuthAdapter(container)
	case "post":
		m.postAdapter = post.NewPostAdapter(container)
	}
}

// Start launches the seeding run and returns immediately.
func (m *SeedModule) Start(_ context.Context) error {
	if m.authAdapter == nil || m.postAdapter == nil {
		return fmt.Errorf("seed dependencies not set")
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	seeder := NewSeeder(m.authAdapter, m.postAdapter, NewGenerator(rand.Uint64()))

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		log.Printf("[seed] Generating %d users with %d-%d posts each...",
			m.opts.Users, m.opts.PostsMin, m.opts.PostsMax)

		summary, err := seeder.Run(ctx, m.opts)
		m.finish(summary, err)

		switch {
		case errors.Is(err, context.Canceled):
			log.Printf("[seed] Cancelled after %d users", summary.Users)
		case err != nil:
			log.Printf("[seed] Failed: %v", err)
		default:
			log.Printf("[seed] Done: %d users, %d posts, %d skipped (password: %s)",
				summary.Users, summary.Posts, summary.Skipped, DefaultPassword)
		}
	}()

	log.Println("[seed] Module started")
	return nil
}

// Stop cancels a running seed and waits for it to return.
func (m *SeedModule) Stop(_ context.Context) error {
	if m.cancel != nil {
		m.cancel()
	}
	m.wg.Wait()
	log.Println("[seed] Module stopped")
	return nil
}

// Health reports seeding progress. A failed run is unhealthy.
func (m *SeedModule) Health(_ context.Context) mono.HealthStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	details := map[string]any{
		"users":   m.summary.Users,
		"posts":   m.summary.Posts,
		"skipped": m.summary.Skipped,
	}
	switch {
	case !m.done:
		return mono.HealthStatus{Healthy: true, Message: "seeding", Details: details}
	case m.err != nil && !errors.Is(m.err, context.Canceled):
		return mono.HealthStatus{Healthy: false, Message: m.err.Error(), Details: details}
	default:
		return mono.HealthStatus{Healthy: true, Message: "complete", Details: details}
	}
}

func (m *SeedModule) finish(summary Summary, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.summary = summary
	m.err = err
	m.done = true
}
