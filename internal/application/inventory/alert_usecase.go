package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/controle-estoque/internal/application/dto"
	"github.com/jhoicas/controle-estoque/internal/domain/inventory"
	"github.com/jhoicas/controle-estoque/internal/domain/repository"
)

var _ Scanner = (*LowStockScanner)(nil)

// LowStockScanner recorre todo el catálogo y lista los productos en o por debajo de su mínimo.
// No modifica datos.
type LowStockScanner struct {
	levels repository.StockLevelRepository
	now    func() time.Time
}

// NewLowStockScanner construye el escáner.
func NewLowStockScanner(levels repository.StockLevelRepository) *LowStockScanner {
	return &LowStockScanner{levels: levels, now: time.Now}
}

// Scan ejecuta una corrida completa. Productos sin cantidad o sin umbral (NULL) se ignoran.
func (s *LowStockScanner) Scan(ctx context.Context) (*dto.LowStockReport, error) {
	levels, err := s.levels.ListStockLevels(ctx)
	if err != nil {
		return nil, err
	}
	report := &dto.LowStockReport{
		RunID:     uuid.NewString(),
		ScannedAt: s.now(),
		Scanned:   len(levels),
		Items:     []dto.LowStockItem{},
	}
	for _, l := range levels {
		if !inventory.IsLowStock(l.Quantity, l.MinQuantity) {
			continue
		}
		report.Items = append(report.Items, dto.LowStockItem{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    *l.Quantity,
			MinQuantity: *l.MinQuantity,
		})
	}
	return report, nil
}
