package user

import "context"

// UserRepository defines data access methods for user accounts.
type UserRepository interface {
	// Create inserts a new user and returns it with generated fields set
	Create(ctx context.Context, u User) (User, error)

	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
}
