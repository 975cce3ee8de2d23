package shared

import (
	"database/sql"
	"fmt"
)

// SeedDatabase loads the embedded demo dataset into a migrated database.
// The dataset is a small, internally consistent music store: every invoice
// total matches the sum of its lines, and one track deliberately has no
// album or genre to exercise the optional-reference paths.
func SeedDatabase(db *sql.DB) error {
	script, err := schemaFiles.ReadFile("sql/seed.sql")
	if err != nil {
		return fmt.Errorf("failed to read seed data: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	if err := execScript(tx, string(script)); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	return tx.Commit()
}
