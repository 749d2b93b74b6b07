package seed

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	domain "github.com/example/jwt-posts-demo/domain/user"
	"github.com/example/jwt-posts-demo/modules/auth"
	"github.com/example/jwt-posts-demo/modules/post"
)

// Options controls how much data a Seeder generates.
type Options struct {
	Users    int
	PostsMin int
	PostsMax int
}

// Summary reports what a run created.
type Summary struct {
	Users   int
	Posts   int
	Skipped int
}

// Seeder fills the store with generated users and posts through the
// auth and post ports.
type Seeder struct {
	auth  auth.AuthPort
	posts post.PostPort
	gen   *Generator
	now   func() time.Time
}

// NewSeeder creates a Seeder.
func NewSeeder(authPort auth.AuthPort, postPort post.PostPort, gen *Generator) *Seeder {
	return &Seeder{
		auth:  authPort,
		posts: postPort,
		gen:   gen,
		now:   time.Now,
	}
}

// Run creates opts.Users accounts with their posts. Accounts whose email is
// already registered are skipped. It stops early when ctx is cancelled.
func (s *Seeder) Run(ctx context.Context, opts Options) (Summary, error) {
	var summary Summary

	for i := 0; i < opts.Users; i++ {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		data := s.gen.User()
		user, err := s.auth.Signup(ctx, auth.SignupRequest{
			Email:    data.Email,
			Name:     data.Name,
			Password: data.Password,
		})
		if err != nil {
			if strings.Contains(err.Error(), domain.ErrUserExists.Error()) {
				summary.Skipped++
				continue
			}
			return summary, fmt.Errorf("failed to create user %s: %w", data.Email, err)
		}
		summary.Users++

		n := s.gen.PostCount(opts.PostsMin, opts.PostsMax)
		for j := 0; j < n; j++ {
			p := s.gen.Post(s.now())
			if _, err := s.posts.Create(ctx, user.ID, p.Title, p.Content, p.CreatedAt); err != nil {
				return summary, fmt.Errorf("failed to create post for %s: %w", data.Email, err)
			}
			summary.Posts++
		}

		if (i+1)%20 == 0 {
			log.Printf("[seed] Created %d users...", i+1)
		}
	}

	return summary, nil
}
