package user

import (
	"context"

	"mentepro/models"
)

// AuthResult carries a signed-in user and their session token.
type AuthResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// UserService manages clinic staff accounts and sessions.
type UserService interface {
	// Register creates a staff account with a hashed password.
	Register(ctx context.Context, email, password, name, role string) (*models.User, error)
	// SignIn verifies the credentials and issues a session token.
	SignIn(ctx context.Context, email, password string) (*AuthResult, error)
	// RevokeToken invalidates the stored session for a user.
	RevokeToken(ctx context.Context, userID string) error
	// GetByID retrieves a staff account.
	GetByID(ctx context.Context, id string) (*models.User, error)
}
