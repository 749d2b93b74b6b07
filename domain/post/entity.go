package post

import (
	"time"
)

// Post is a piece of content owned by a single user.
type Post struct {
	ID        string `gorm:"primaryKey;type:text"`
	UserID    string `gorm:"index;not null;type:text"`
	Title     string `gorm:"not null;type:text"`
	Content   string `gorm:"not null;type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for the Post entity.
func (Post) TableName() string {
	return "posts"
}
