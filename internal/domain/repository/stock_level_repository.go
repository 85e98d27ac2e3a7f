package repository

import (
	"context"

	"github.com/jhoicas/controle-estoque/internal/domain/entity"
)

// StockLevelRepository lectura completa de cantidades y umbrales para el escaneo de alertas.
type StockLevelRepository interface {
	ListStockLevels(ctx context.Context) ([]entity.StockLevel, error)
}
