// Package sqlite implementa la persistencia sobre el archivo SQLite local (modernc.org/sqlite, sin cgo).
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/jhoicas/controle-estoque/pkg/config"
	"github.com/jhoicas/controle-estoque/pkg/logger"
)

const driverName = "sqlite"

// Querier interfaz común de *sql.DB y *sql.Tx; los repositorios funcionan sobre cualquiera de los dos.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DB es el gateway de persistencia: un único handle al archivo local con a lo sumo una conexión viva.
type DB struct {
	sql *sql.DB
	log *logger.Logger
}

var _ Querier = (*DB)(nil)

// Open abre (o crea) el archivo de base de datos, aplica las migraciones y deja el handle listo.
func Open(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*DB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("crear directorio de datos: %w", err)
		}
	}

	sqlDB, err := sql.Open(driverName, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("abrir %s: %w", cfg.Path, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}

	if err := Migrate(ctx, sqlDB, log); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	// Un solo proceso y un solo escritor: una conexión, adquirida y liberada por sentencia.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	log.Debug().Str("path", cfg.Path).Msg("base de datos abierta")
	return &DB{sql: sqlDB, log: log}, nil
}

// Close cierra el handle.
func (d *DB) Close() error {
	return d.sql.Close()
}

// SQL expone el *sql.DB subyacente (tests y herramientas).
func (d *DB) SQL() *sql.DB {
	return d.sql
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return d.sql.ExecContext(ctx, query, args...)
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return d.sql.QueryContext(ctx, query, args...)
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return d.sql.QueryRowContext(ctx, query, args...)
}

// Execute ejecuta una sentencia de escritura con parámetros enlazados (auto-commit fuera de transacción).
func (d *DB) Execute(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return execute(ctx, d, query, args...)
}

// Fetch ejecuta una consulta y llama scan por cada fila. Las filas se cierran siempre.
func (d *DB) Fetch(ctx context.Context, query string, scan func(*sql.Rows) error, args ...any) error {
	return fetch(ctx, d, query, scan, args...)
}

func execute(ctx context.Context, q Querier, query string, args ...any) (sql.Result, error) {
	return q.ExecContext(ctx, query, args...)
}

func fetch(ctx context.Context, q Querier, query string, scan func(*sql.Rows) error, args ...any) error {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}
