package user

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account in the system.
// @Description User information
// @Description with id, username, capability flags, created_at, and updated_at
type User struct {
	ID                 uuid.UUID `json:"id"`
	Username           string    `json:"username"`
	PasswordHash       string    `json:"-"`
	IsAdmin            bool      `json:"is_admin"`
	CanAddProduct      bool      `json:"can_add_product"`
	CanViewReports     bool      `json:"can_view_reports"`
	CanManageInventory bool      `json:"can_manage_inventory"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
