package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/jhoicas/controle-estoque/pkg/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate aplica las migraciones embebidas. Las tablas usan IF NOT EXISTS, así que un archivo
// creado por la versión anterior del programa se adopta sin cambios de esquema.
func Migrate(ctx context.Context, db *sql.DB, log *logger.Logger) error {
	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(log.Named("goose"))
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("migrar esquema: %w", err)
	}
	return nil
}

// SchemaVersion devuelve la versión de esquema aplicada según la tabla de goose.
func (d *DB) SchemaVersion(ctx context.Context) (int64, error) {
	version, err := goose.GetDBVersionContext(ctx, d.sql)
	if err != nil {
		return 0, fmt.Errorf("versión de esquema: %w", err)
	}
	return version, nil
}
