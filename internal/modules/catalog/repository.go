package catalog

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines product data storage.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*Product, error)
	List(ctx context.Context) ([]*Product, error)
	// Delete removes a product unless ledger movements or a current-stock
	// row still reference it.
	Delete(ctx context.Context, id uuid.UUID) error
}
