package inventory

import (
	"context"

	"github.com/jhoicas/controle-estoque/internal/application/dto"
	"github.com/jhoicas/controle-estoque/pkg/logger"
)

var _ Notifier = (*LogNotifier)(nil)

// LogNotifier escribe cada violación como un evento warn.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier construye el notificador.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log.Named("low_stock")}
}

func (n *LogNotifier) Notify(_ context.Context, report *dto.LowStockReport) error {
	for _, item := range report.Items {
		n.log.Warn().
			Str("run_id", report.RunID).
			Int64("product_id", item.ProductID).
			Str("product", item.ProductName).
			Int64("quantity", item.Quantity).
			Int64("min_quantity", item.MinQuantity).
			Msg("estoque mínimo")
	}
	return nil
}

// MultiNotifier reparte el reporte entre varios notificadores; devuelve el primer error.
type MultiNotifier []Notifier

func (m MultiNotifier) Notify(ctx context.Context, report *dto.LowStockReport) error {
	var first error
	for _, n := range m {
		if err := n.Notify(ctx, report); err != nil && first == nil {
			first = err
		}
	}
	return first
}
