package post

import (
	"time"

	domain "github.com/example/jwt-posts-demo/domain/post"
)

// CreatePostRequest is the request for creating a post.
type CreatePostRequest struct {
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ListByUserRequest is the request for listing a user's posts.
type ListByUserRequest struct {
	UserID string `json:"user_id"`
}

// PostResponse represents a post in responses.
type PostResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListPostsResponse is the response for listing posts.
type ListPostsResponse struct {
	Posts []PostResponse `json:"posts"`
	Total int            `json:"total"`
}

// toPostResponse converts a Post entity to a PostResponse.
func toPostResponse(post *domain.Post) PostResponse {
	return PostResponse{
		ID:        post.ID,
		UserID:    post.UserID,
		Title:     post.Title,
		Content:   post.Content,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

func (r PostResponse) toPost() *domain.Post {
	return &domain.Post{
		ID:        r.ID,
		UserID:    r.UserID,
		Title:     r.Title,
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
