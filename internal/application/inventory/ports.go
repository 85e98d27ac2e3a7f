package inventory

import (
	"context"

	"github.com/jhoicas/controle-estoque/internal/application/dto"
	"github.com/jhoicas/controle-estoque/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que el registro del movimiento y la cantidad en caché se aplican juntos o no se aplican.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// Scanner produce el reporte de stock bajo.
type Scanner interface {
	Scan(ctx context.Context) (*dto.LowStockReport, error)
}

// Notifier superficie donde se muestran las violaciones (terminal, log...).
type Notifier interface {
	Notify(ctx context.Context, report *dto.LowStockReport) error
}
