package inventory_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/controle-estoque/internal/application/inventory"
	"github.com/jhoicas/controle-estoque/internal/domain/entity"
	"github.com/jhoicas/controle-estoque/internal/infrastructure/sqlite"
	"github.com/jhoicas/controle-estoque/pkg/config"
	"github.com/jhoicas/controle-estoque/pkg/logger"
	"github.com/jhoicas/controle-estoque/pkg/validator"
)

func openDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db, err := sqlite.Open(context.Background(), config.DBConfig{
		Path:          filepath.Join(t.TempDir(), "estoque.db"),
		BusyTimeoutMS: 5000,
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newLedger(db *sqlite.DB, opts ...inventory.Option) *inventory.RegisterMovementUseCase {
	return inventory.NewRegisterMovementUseCase(
		sqlite.NewTxRunner(db),
		sqlite.NewMovementRepository(db),
		validator.MustNew(),
		opts...,
	)
}

func createProduct(t *testing.T, db *sqlite.DB, name string, qty, minQty int64) int64 {
	t.Helper()
	p := &entity.Product{Name: name, Quantity: qty, MinQuantity: minQty}
	require.NoError(t, sqlite.NewProductRepository(db).Create(context.Background(), p))
	return p.ID
}

func quantityOf(t *testing.T, db *sqlite.DB, id int64) int64 {
	t.Helper()
	p, err := sqlite.NewProductRepository(db).GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Quantity
}

// steppingClock avanza un segundo por llamada a partir de start.
func steppingClock(start time.Time) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(time.Second)
		return now
	}
}

// fixedClock siempre devuelve t.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
