package db

import (
	_ "embed"

	"github.com/jmoiron/sqlx"
)

//go:embed schema.sql
var schemaDDL string

// EnsureSchema applies the embedded DDL. Statements are idempotent, so
// running it on every startup is safe. Requires multiStatements=true in the
// DSN params.
func EnsureSchema(db *sqlx.DB) error {
	_, err := db.Exec(schemaDDL)
	return err
}
