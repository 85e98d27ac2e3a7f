package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/controle-estoque/internal/domain/entity"
)

// PostMovementRequest entrada para registrar una entrada o salida.
type PostMovementRequest struct {
	ProductID int64  `validate:"gt=0"`
	Type      string `validate:"oneof=entrada saida"`
	Quantity  int64  `validate:"gt=0"`
	Note      string `validate:"max=500"`
}

// AdjustStockRequest lleva la cantidad de un producto a Target registrando la diferencia en el libro.
type AdjustStockRequest struct {
	ProductID int64 `validate:"gt=0"`
	Target    int64
	Note      string `validate:"max=500"`
}

// LowStockItem producto con cantidad menor o igual a su mínimo.
type LowStockItem struct {
	ProductID   int64
	ProductName string
	Quantity    int64
	MinQuantity int64
}

// LowStockReport resultado de una corrida del escáner. Cada corrida es independiente.
type LowStockReport struct {
	RunID     string
	ScannedAt time.Time
	Scanned   int
	Items     []LowStockItem
}

// Empty indica que no hubo violaciones.
func (r *LowStockReport) Empty() bool {
	return r == nil || len(r.Items) == 0
}

// StockReportData datos del reporte PDF de inventario.
type StockReportData struct {
	Title       string
	GeneratedAt time.Time
	Products    []entity.ProductView
	LowStock    []LowStockItem
	TotalUnits  int64
	TotalValue  decimal.Decimal // suma de precio * cantidad (cantidades negativas incluidas)
}
