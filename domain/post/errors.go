package post

import "errors"

var (
	// ErrTitleRequired is returned when creating a post without a title.
	ErrTitleRequired = errors.New("post title is required")
	// ErrContentRequired is returned when creating a post without content.
	ErrContentRequired = errors.New("post content is required")
)
