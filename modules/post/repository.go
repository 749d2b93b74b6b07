package post

import (
	"context"
	"fmt"

	domain "github.com/example/jwt-posts-demo/domain/post"
	"gorm.io/gorm"
)

// Repository provides access to post storage.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new post repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create saves a new post to the database.
func (r *Repository) Create(ctx context.Context, post *domain.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// FindByUserID returns a user's posts, newest first.
func (r *Repository) FindByUserID(ctx context.Context, userID string) ([]*domain.Post, error) {
	posts := make([]*domain.Post, 0)
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to find posts: %w", err)
	}
	return posts, nil
}
