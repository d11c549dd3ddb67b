package database

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jmoiron/sqlx"
)

//go:embed schema.sql
var schemaSQL string

//go:embed seed.sql
var seedSQL string

// Migrate creates every table that does not exist yet.  The DSN must enable
// multi statements (see DSN).
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Seed inserts demo ticket types, hotels and rooms.
func Seed(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, seedSQL); err != nil {
		return fmt.Errorf("apply seed: %w", err)
	}
	return nil
}
