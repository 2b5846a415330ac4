package inventory

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/kaletesis/stoktakip-backend/internal/apperr"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL ledger repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) RecordMovement(ctx context.Context, m *Movement) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return apperr.Internal(err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO inventory_movements
		  (id, product_id, quantity_change, unit, total_price, movement_type, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING movement_date`,
		m.ID, m.ProductID, m.QuantityChange, m.Unit, m.TotalPrice,
		m.MovementType, m.UserID).Scan(&m.MovementDate)
	if err != nil {
		return apperr.FromStorage(err,
			"Bu hareket zaten kayıtlı",
			"Ürün veya kullanıcı bulunamadı",
			"Hareket bulunamadı")
	}

	// Atomic increment on the (product, unit) row; no read-modify-write.
	_, err = tx.ExecContext(ctx, `
		INSERT INTO current_stock (id, product_id, quantity, unit, total_price, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (product_id, unit) DO UPDATE
		SET quantity     = current_stock.quantity + EXCLUDED.quantity,
		    total_price  = current_stock.total_price + EXCLUDED.total_price,
		    last_updated = NOW(),
		    updated_by   = EXCLUDED.updated_by`,
		uuid.New(), m.ProductID, m.QuantityChange, m.Unit, m.TotalPrice, m.UserID)
	if err != nil {
		return apperr.FromStorage(err,
			"Stok kaydı çakışması",
			"Ürün veya kullanıcı bulunamadı",
			"Stok kaydı bulunamadı")
	}

	if err := tx.Commit(); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (r *postgresRepo) DeleteMovement(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return apperr.Internal(err)
	}
	defer tx.Rollback()

	var productID uuid.UUID
	var quantity float64
	var unit string
	err = tx.QueryRowContext(ctx, `
		SELECT product_id, quantity_change, unit
		FROM inventory_movements WHERE id = $1`, id).
		Scan(&productID, &quantity, &unit)
	if err != nil {
		return apperr.FromStorage(err, "", "", "Hareket bulunamadı")
	}

	// Quantity is reversed; total price deliberately is not. Deleting a
	// movement can drive the stock quantity negative.
	_, err = tx.ExecContext(ctx, `
		UPDATE current_stock
		SET quantity = quantity - $1, last_updated = NOW()
		WHERE product_id = $2 AND unit = $3`,
		quantity, productID, unit)
	if err != nil {
		return apperr.Internal(err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM inventory_movements WHERE id = $1`, id); err != nil {
		return apperr.Internal(err)
	}

	if err := tx.Commit(); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (r *postgresRepo) LatestMovements(ctx context.Context, limit int) ([]*MovementDetail, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT im.id, p.name, p.category, im.quantity_change, im.unit,
		       im.total_price, im.movement_date
		FROM inventory_movements im
		JOIN products p ON im.product_id = p.id
		ORDER BY im.movement_date DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	defer rows.Close()

	var movements []*MovementDetail
	for rows.Next() {
		d := &MovementDetail{}
		if err := rows.Scan(&d.MovementID, &d.ProductName, &d.ProductCategory,
			&d.Quantity, &d.Unit, &d.TotalPrice, &d.MovementDate); err != nil {
			return nil, apperr.Internal(err)
		}
		d.LocalDate = d.MovementDate.Local().Format(LocalDateFormat)
		movements = append(movements, d)
	}
	return movements, rows.Err()
}

func (r *postgresRepo) StockForProduct(ctx context.Context, productID uuid.UUID) ([]*CurrentStock, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, product_id, quantity, unit, total_price, last_updated, updated_by
		FROM current_stock WHERE product_id = $1 ORDER BY unit`, productID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	defer rows.Close()

	var stocks []*CurrentStock
	for rows.Next() {
		s := &CurrentStock{}
		var updatedBy uuid.NullUUID
		if err := rows.Scan(&s.ID, &s.ProductID, &s.Quantity, &s.Unit,
			&s.TotalPrice, &s.LastUpdated, &updatedBy); err != nil {
			return nil, apperr.Internal(err)
		}
		if updatedBy.Valid {
			s.UpdatedBy = &updatedBy.UUID
		}
		stocks = append(stocks, s)
	}
	return stocks, rows.Err()
}
