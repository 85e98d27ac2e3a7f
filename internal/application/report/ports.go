package report

import (
	"context"
	"io"

	"github.com/jhoicas/controle-estoque/internal/application/dto"
	"github.com/jhoicas/controle-estoque/internal/domain/entity"
)

// ProductLister fuente del catálogo.
type ProductLister interface {
	List(ctx context.Context, search string) ([]entity.ProductView, error)
}

// CatalogWriter escribe la instantánea del catálogo en un formato plano (CSV).
type CatalogWriter interface {
	WriteCatalog(w io.Writer, rows []entity.ProductView) error
}

// StockReportGenerator genera el reporte de inventario en PDF y devuelve sus bytes.
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, data dto.StockReportData) ([]byte, error)
}
