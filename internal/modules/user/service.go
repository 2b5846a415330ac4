package user

import (
	"context"

	"github.com/google/uuid"
)

// CreateUserRequest holds the data for creating a user.
type CreateUserRequest struct {
	Username           string `json:"username"`
	Password           string `json:"password"`
	IsAdmin            bool   `json:"is_admin"`
	CanAddProduct      bool   `json:"can_add_product"`
	CanViewReports     bool   `json:"can_view_reports"`
	CanManageInventory bool   `json:"can_manage_inventory"`
}

// UpdateUserRequest holds a partial user update. Only non-nil fields are
// applied; a supplied password is re-hashed before storage.
type UpdateUserRequest struct {
	Password           *string `json:"password,omitempty"`
	IsAdmin            *bool   `json:"is_admin,omitempty"`
	CanAddProduct      *bool   `json:"can_add_product,omitempty"`
	CanViewReports     *bool   `json:"can_view_reports,omitempty"`
	CanManageInventory *bool   `json:"can_manage_inventory,omitempty"`
}

// Service defines the interface for user-related business logic.
type Service interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
