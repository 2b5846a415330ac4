package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/kaletesis/stoktakip-backend/internal/modules/user"
)

// Capability is a named permission. The set is closed: capabilities map to
// fixed columns on the user record and are never built from free-form
// strings.
type Capability string

const (
	CapAddProduct      Capability = "can_add_product"
	CapViewReports     Capability = "can_view_reports"
	CapManageInventory Capability = "can_manage_inventory"
	CapManageUsers     Capability = "manage_users"
)

// HasCapability reports whether the user holds the capability. An admin
// implicitly holds every capability; a nil user holds none.
func HasCapability(u *user.User, cap Capability) bool {
	if u == nil {
		return false
	}
	if u.IsAdmin {
		return true
	}
	switch cap {
	case CapAddProduct:
		return u.CanAddProduct
	case CapViewReports:
		return u.CanViewReports
	case CapManageInventory:
		return u.CanManageInventory
	case CapManageUsers:
		return false
	default:
		return false
	}
}

// Service defines the interface for authentication-related business logic.
type Service interface {
	Login(ctx context.Context, username, password string) (string, *user.User, error)
	// CheckPermission resolves the user and evaluates the capability.
	// An unknown user yields false, never an error.
	CheckPermission(ctx context.Context, userID uuid.UUID, cap Capability) bool
	// UserFromToken validates a JWT and loads the user it names.
	UserFromToken(ctx context.Context, token string) (*user.User, error)
}
