package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/controle-estoque/internal/domain/entity"
	"github.com/jhoicas/controle-estoque/internal/domain/repository"
)

var _ repository.StockLevelRepository = (*StockLevelRepo)(nil)

// StockLevelRepo lectura de cantidades y umbrales tal como están guardados (NULL incluido).
type StockLevelRepo struct {
	q Querier
}

// NewStockLevelRepository construye el adaptador. Acepta DB o tx (Querier).
func NewStockLevelRepository(q Querier) *StockLevelRepo {
	return &StockLevelRepo{q: q}
}

// ListStockLevels recorre todos los productos en orden de nombre. El filtrado lo hace el escáner.
func (r *StockLevelRepo) ListStockLevels(ctx context.Context) ([]entity.StockLevel, error) {
	var list []entity.StockLevel
	err := fetch(ctx, r.q, `
		SELECT id, nome, quantidade, min_estoque
		FROM produtos
		ORDER BY nome, id`, func(rows *sql.Rows) error {
		var (
			l           entity.StockLevel
			qty, minQty sql.NullInt64
		)
		if err := rows.Scan(&l.ProductID, &l.ProductName, &qty, &minQty); err != nil {
			return fmt.Errorf("scan stock level: %w", err)
		}
		l.Quantity = int64Ptr(qty)
		l.MinQuantity = int64Ptr(minQty)
		list = append(list, l)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list stock levels: %w", err)
	}
	return list, nil
}
