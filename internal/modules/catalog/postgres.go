package catalog

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/kaletesis/stoktakip-backend/internal/apperr"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL product repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products (id, name, category)
		VALUES ($1, $2, $3)`,
		p.ID, p.Name, p.Category)
	return apperr.FromStorage(err,
		"Bu ürün zaten tanımlı",
		"İlişkili kayıt bulunamadı",
		"Ürün bulunamadı")
}

func (r *postgresRepo) GetByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	p := &Product{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, category, created_at, updated_at
		FROM products WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Category, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, apperr.FromStorage(err, "", "", "Ürün bulunamadı")
	}
	return p, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, category, created_at, updated_at
		FROM products ORDER BY name`)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p := &Product{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, apperr.Internal(err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// Delete blocks removal while ledger movements or a current-stock row still
// reference the product, so historical reports stay consistent.
func (r *postgresRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return apperr.Internal(err)
	}
	defer tx.Rollback()

	var refs int
	err = tx.QueryRowContext(ctx, `
		SELECT (SELECT COUNT(*) FROM inventory_movements WHERE product_id = $1)
		     + (SELECT COUNT(*) FROM current_stock WHERE product_id = $1)`, id).Scan(&refs)
	if err != nil {
		return apperr.Internal(err)
	}
	if refs > 0 {
		return apperr.Conflict("Bu ürüne ait stok hareketleri bulunmaktadır. Önce stok kayıtlarını temizleyiniz.")
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("Ürün bulunamadı")
	}
	if err := tx.Commit(); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
