package inventory

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines ledger data storage. Movement writes and the
// current-stock maintenance they imply are atomic: either both land or
// neither does.
type Repository interface {
	// RecordMovement appends the movement and folds its quantity and
	// price into the (product, unit) current-stock row in one
	// transaction.
	RecordMovement(ctx context.Context, m *Movement) error
	// DeleteMovement reverses the movement's quantity effect on current
	// stock and removes the movement row in one transaction. Total price
	// is intentionally not reversed.
	DeleteMovement(ctx context.Context, id uuid.UUID) error
	LatestMovements(ctx context.Context, limit int) ([]*MovementDetail, error)
	StockForProduct(ctx context.Context, productID uuid.UUID) ([]*CurrentStock, error)
}
