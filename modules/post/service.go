package post

import (
	"context"
	"fmt"
	"strings"

	domain "github.com/example/jwt-posts-demo/domain/post"
	"github.com/go-monolith/mono"
	"github.com/google/uuid"
)

// createPost handles the post.create service request.
func (m *PostModule) createPost(ctx context.Context, req CreatePostRequest, _ *mono.Msg) (PostResponse, error) {
	if req.UserID == "" {
		return PostResponse{}, fmt.Errorf("user_id is required")
	}
	if strings.TrimSpace(req.Title) == "" {
		return PostResponse{}, domain.ErrTitleRequired
	}
	if strings.TrimSpace(req.Content) == "" {
		return PostResponse{}, domain.ErrContentRequired
	}

	// GORM fills CreatedAt/UpdatedAt when they are zero.
	post := &domain.Post{
		ID:        uuid.New().String(),
		UserID:    req.UserID,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: req.CreatedAt,
		UpdatedAt: req.CreatedAt,
	}

	if err := m.repo.Create(ctx, post); err != nil {
		return PostResponse{}, err
	}

	return toPostResponse(post), nil
}

// listByUser handles the post.list-by-user service request.
func (m *PostModule) listByUser(ctx context.Context, req ListByUserRequest, _ *mono.Msg) (ListPostsResponse, error) {
	if req.UserID == "" {
		return ListPostsResponse{}, fmt.Errorf("user_id is required")
	}

	posts, err := m.repo.FindByUserID(ctx, req.UserID)
	if err != nil {
		return ListPostsResponse{}, err
	}

	response := ListPostsResponse{
		Posts: make([]PostResponse, 0, len(posts)),
		Total: len(posts),
	}
	for _, post := range posts {
		response.Posts = append(response.Posts, toPostResponse(post))
	}

	return response, nil
}
