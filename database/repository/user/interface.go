package userRepo

import (
	"context"

	"mentepro/models"
)

// UserRepository defines methods for staff account data access.
type UserRepository interface {
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
	// Update modifies an existing user record.
	Update(ctx context.Context, user *models.User) error
	// GetByID retrieves a user by its unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address. Missing users
	// return nil without an error.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
