package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines user data storage.
type Repository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	UpdateUser(ctx context.Context, user *User) error
	// DeleteUser removes a user. The last remaining admin cannot be
	// deleted; the check and the delete run in one transaction.
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
