package user

import (
	"time"
)

// User represents a registered account.
// PasswordHash always holds a bcrypt hash, never the plaintext.
type User struct {
	ID           string `gorm:"primaryKey;type:text"`
	Email        string `gorm:"uniqueIndex;not null;type:text"`
	Name         string `gorm:"not null;type:text"`
	PasswordHash string `gorm:"column:password;not null;type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName returns the table name for the User entity.
func (User) TableName() string {
	return "users"
}

// AccessToken is what a successful login hands back to the client.
type AccessToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// TokenTypeBearer is the token_type reported for every issued token.
const TokenTypeBearer = "bearer"
