package post

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	domain "github.com/example/jwt-posts-demo/domain/post"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// PostPort defines the post operations other modules use.
type PostPort interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.Post, error)
	Create(ctx context.Context, userID, title, content string, createdAt time.Time) (*domain.Post, error)
}

// PostAdapter implements PostPort using the service container.
type PostAdapter struct {
	container mono.ServiceContainer
}

var _ PostPort = (*PostAdapter)(nil)

// NewPostAdapter creates a new PostAdapter.
func NewPostAdapter(container mono.ServiceContainer) *PostAdapter {
	return &PostAdapter{
		container: container,
	}
}

// ListByUser returns a user's posts, newest first.
func (a *PostAdapter) ListByUser(ctx context.Context, userID string) ([]*domain.Post, error) {
	req := ListByUserRequest{UserID: userID}
	var resp ListPostsResponse

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"list-by-user",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("list-by-user request failed: %w", err)
	}

	posts := make([]*domain.Post, 0, len(resp.Posts))
	for _, p := range resp.Posts {
		posts = append(posts, p.toPost())
	}
	return posts, nil
}

// Create stores a new post. A zero createdAt means now.
func (a *PostAdapter) Create(ctx context.Context, userID, title, content string, createdAt time.Time) (*domain.Post, error) {
	req := CreatePostRequest{
		UserID:    userID,
		Title:     title,
		Content:   content,
		CreatedAt: createdAt,
	}
	var resp PostResponse

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"create",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}

	return resp.toPost(), nil
}
