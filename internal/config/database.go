package config

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
)

// SetupDatabase opens the database connection, configures the pool and
// creates the schema if it does not exist yet.
func SetupDatabase(cfg *Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err := createTables(db); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return db, nil
}

func createTables(db *sqlx.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			username VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			is_admin BOOLEAN NOT NULL DEFAULT FALSE,
			can_add_product BOOLEAN NOT NULL DEFAULT FALSE,
			can_view_reports BOOLEAN NOT NULL DEFAULT FALSE,
			can_manage_inventory BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id UUID PRIMARY KEY,
			name VARCHAR(255) UNIQUE NOT NULL,
			category VARCHAR(50) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS current_stock (
			id UUID PRIMARY KEY,
			product_id UUID NOT NULL REFERENCES products(id),
			quantity DOUBLE PRECISION NOT NULL,
			unit VARCHAR(50) NOT NULL,
			total_price DOUBLE PRECISION NOT NULL,
			last_updated TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_by UUID REFERENCES users(id) ON DELETE SET NULL,
			UNIQUE (product_id, unit)
		)`,
		`CREATE TABLE IF NOT EXISTS inventory_movements (
			id UUID PRIMARY KEY,
			product_id UUID NOT NULL REFERENCES products(id),
			quantity_change DOUBLE PRECISION NOT NULL,
			unit VARCHAR(50) NOT NULL,
			total_price DOUBLE PRECISION NOT NULL,
			movement_type VARCHAR(50) NOT NULL,
			movement_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			user_id UUID REFERENCES users(id) ON DELETE SET NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_movements_product_id ON inventory_movements(product_id)`,
		`CREATE INDEX IF NOT EXISTS idx_movements_movement_date ON inventory_movements(movement_date)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
