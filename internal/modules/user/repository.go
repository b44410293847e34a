package user

import "context"

// Repository defines data access for users.
type Repository interface {
	CreateUser(ctx context.Context, user *User) error

	// GetUserByUsername returns (nil, nil) when the username is unknown.
	GetUserByUsername(ctx context.Context, username string) (*User, error)

	// CountUsers reports how many users exist; used by startup seeding.
	CountUsers(ctx context.Context) (int, error)
}
