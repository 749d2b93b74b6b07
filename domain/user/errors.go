package user

import "errors"

// Errors cross module boundaries as strings, so the API layer matches on
// these messages. Keep them stable.
var (
	// ErrUserNotFound is returned when a lookup by id or email misses.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists is returned when signing up with an email already in use.
	ErrUserExists = errors.New("email already registered")
	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	// ErrUnauthorized covers invalid or expired tokens and tokens whose
	// subject no longer resolves to a user.
	ErrUnauthorized = errors.New("could not validate credentials")
	// ErrNoUsers is returned when a random user is requested from an empty store.
	ErrNoUsers = errors.New("no users found in database")
	// ErrPasswordTooLong is returned when a password exceeds bcrypt's 72-byte limit.
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes")
)
