package user

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/kaletesis/stoktakip-backend/internal/apperr"
)

const userColumns = `id, username, password_hash, is_admin, can_add_product,
	can_view_reports, can_manage_inventory, created_at, updated_at`

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL user repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) CreateUser(ctx context.Context, u *User) error {
	query := `
		INSERT INTO users (id, username, password_hash, is_admin, can_add_product, can_view_reports, can_manage_inventory)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		u.ID, u.Username, u.PasswordHash, u.IsAdmin,
		u.CanAddProduct, u.CanViewReports, u.CanManageInventory)
	return apperr.FromStorage(err,
		"Bu kullanıcı adı zaten kullanılıyor",
		"İlişkili kayıt bulunamadı",
		"Kullanıcı bulunamadı")
}

func scanUser(scan func(...interface{}) error) (*User, error) {
	u := &User{}
	err := scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.IsAdmin,
		&u.CanAddProduct, &u.CanViewReports, &u.CanManageInventory,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *postgresRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row.Scan)
	if err != nil {
		return nil, apperr.FromStorage(err, "", "", "Kullanıcı bulunamadı")
	}
	return u, nil
}

func (r *postgresRepository) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	u, err := scanUser(row.Scan)
	if err != nil {
		return nil, apperr.FromStorage(err, "", "", "Kullanıcı bulunamadı")
	}
	return u, nil
}

func (r *postgresRepository) ListUsers(ctx context.Context) ([]*User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY username`)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		u, err := scanUser(rows.Scan)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *postgresRepository) UpdateUser(ctx context.Context, u *User) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET password_hash = $1, is_admin = $2, can_add_product = $3,
		    can_view_reports = $4, can_manage_inventory = $5, updated_at = NOW()
		WHERE id = $6`,
		u.PasswordHash, u.IsAdmin, u.CanAddProduct,
		u.CanViewReports, u.CanManageInventory, u.ID)
	if err != nil {
		return apperr.Internal(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("Kullanıcı bulunamadı")
	}
	return nil
}

// DeleteUser refuses to delete the last remaining admin. The admin check and
// the delete share one transaction so two concurrent deletes cannot empty
// the admin set.
func (r *postgresRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return apperr.Internal(err)
	}
	defer tx.Rollback()

	var isAdmin bool
	err = tx.QueryRowContext(ctx,
		`SELECT is_admin FROM users WHERE id = $1 FOR UPDATE`, id).Scan(&isAdmin)
	if err != nil {
		return apperr.FromStorage(err, "", "", "Kullanıcı bulunamadı")
	}

	if isAdmin {
		var otherAdmins int
		err = tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM users WHERE is_admin = TRUE AND id <> $1`, id).Scan(&otherAdmins)
		if err != nil {
			return apperr.Internal(err)
		}
		if otherAdmins == 0 {
			return apperr.Conflict("Son admin kullanıcısı silinemez")
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return apperr.Internal(err)
	}
	if err := tx.Commit(); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
