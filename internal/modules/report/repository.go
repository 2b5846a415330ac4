package report

import (
	"context"
	"time"
)

// Repository defines the read-only projections over the ledger.
type Repository interface {
	MovementsInWindow(ctx context.Context, start, end time.Time) ([]*DetailedRow, error)
	SummaryInWindow(ctx context.Context, start, end time.Time) ([]*SummaryRow, error)
}
