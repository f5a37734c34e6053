package user

import "context"

// Repository defines the persistence contract for user accounts.
type Repository interface {
	// Save persists a new user and returns it with its assigned id.
	Save(ctx context.Context, u *User) (*User, error)

	// FindByID retrieves a user by its identifier.
	FindByID(ctx context.Context, id int64) (*User, error)

	// FindByEmail retrieves a user by its unique email.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindAll retrieves every registered user.
	FindAll(ctx context.Context) ([]*User, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, u *User) error

	// Delete removes a user by its identifier.
	Delete(ctx context.Context, id int64) error

	// ExistsByEmail reports whether the email is already registered.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
