package db

import (
	"context"
	_ "embed"
)

//go:embed schema.sql
var schemaSQL string

// ApplySchema creates all tables and indexes. Statements are idempotent, so
// test harnesses can call it against a fresh database per run.
func ApplySchema(ctx context.Context, db DBTX) error {
	_, err := db.Exec(ctx, schemaSQL)
	return err
}
