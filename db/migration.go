package db

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"

	"github.com/cockroachdb/errors"
	"github.com/pressly/goose/v3"
)

//go:embed schema/*.sql
var schemaFiles embed.FS

// Migrate はエクスポート用データベースのスキーマを最新の版まで適用し、
// 適用したマイグレーションの数を返します。
func Migrate(ctx context.Context, conn *sql.DB) (int, error) {
	if _, err := conn.ExecContext(ctx, `PRAGMA foreign_keys = ON;`); err != nil {
		return 0, errors.Wrap(err, "enable foreign keys")
	}

	schema, err := fs.Sub(schemaFiles, "schema")
	if err != nil {
		return 0, errors.Wrap(err, "open embedded schema")
	}

	// グローバル状態を使わないProviderで実行する
	provider, err := goose.NewProvider(goose.DialectSQLite3, conn, schema)
	if err != nil {
		return 0, errors.Wrap(err, "create migration provider")
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "apply export schema")
	}
	return len(results), nil
}
