package usecase_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/controle-estoque/internal/application/usecase"
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

func newCategoryUseCase(db *sqlite.DB) *usecase.CategoryUseCase {
	return usecase.NewCategoryUseCase(sqlite.NewCategoryRepository(db), validator.MustNew())
}

func newProductUseCase(db *sqlite.DB, policy string) *usecase.ProductUseCase {
	return usecase.NewProductUseCase(
		sqlite.NewProductRepository(db),
		sqlite.NewMovementRepository(db),
		sqlite.NewTxRunner(db),
		validator.MustNew(),
		policy,
	)
}
