package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/controle-estoque/internal/application/inventory"
	"github.com/jhoicas/controle-estoque/internal/infrastructure/sqlite"
)

func TestLowStockScanner_Scan(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	createProduct(t, db, "A", 2, 5)
	createProduct(t, db, "B", 5, 5)
	createProduct(t, db, "D", 6, 5)
	_, err := db.Execute(ctx, `INSERT INTO produtos (nome, quantidade, min_estoque) VALUES ('C', 1, NULL)`)
	require.NoError(t, err)
	_, err = db.Execute(ctx, `INSERT INTO produtos (nome, quantidade, min_estoque) VALUES ('E', NULL, 3)`)
	require.NoError(t, err)

	report, err := inventory.NewLowStockScanner(sqlite.NewStockLevelRepository(db)).Scan(ctx)
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 5, report.Scanned)
	require.Len(t, report.Items, 2)
	assert.Equal(t, "A", report.Items[0].ProductName)
	assert.Equal(t, int64(2), report.Items[0].Quantity)
	assert.Equal(t, int64(5), report.Items[0].MinQuantity)
	assert.Equal(t, "B", report.Items[1].ProductName, "igual al mínimo cuenta como violación")
}

func TestLowStockScanner_CorridasIndependientes(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	scanner := inventory.NewLowStockScanner(sqlite.NewStockLevelRepository(db))

	first, err := scanner.Scan(ctx)
	require.NoError(t, err)
	assert.True(t, first.Empty())
	assert.NotNil(t, first.Items)

	createProduct(t, db, "A", 0, 1)
	second, err := scanner.Scan(ctx)
	require.NoError(t, err)
	assert.Len(t, second.Items, 1)
	assert.NotEqual(t, first.RunID, second.RunID)
}
