package report

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/kaletesis/stoktakip-backend/internal/apperr"
)

type postgresRepo struct{ db *sqlx.DB }

// NewPostgresRepository creates a new PostgreSQL report repository.
func NewPostgresRepository(db *sqlx.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) MovementsInWindow(ctx context.Context, start, end time.Time) ([]*DetailedRow, error) {
	var rows []*DetailedRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT im.movement_date,
		       p.name AS product_name,
		       im.quantity_change AS quantity,
		       im.unit,
		       im.total_price
		FROM inventory_movements im
		JOIN products p ON im.product_id = p.id
		WHERE im.movement_date BETWEEN $1 AND $2
		ORDER BY im.movement_date DESC`, start, end)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return rows, nil
}

func (r *postgresRepo) SummaryInWindow(ctx context.Context, start, end time.Time) ([]*SummaryRow, error) {
	var rows []*SummaryRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT p.name AS product_name,
		       SUM(im.quantity_change) AS total_quantity,
		       im.unit,
		       SUM(im.total_price) AS total_price
		FROM inventory_movements im
		JOIN products p ON im.product_id = p.id
		WHERE im.movement_date BETWEEN $1 AND $2
		GROUP BY p.id, p.name, im.unit
		ORDER BY p.name`, start, end)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return rows, nil
}
