package report

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/controle-estoque/internal/application/dto"
	"github.com/jhoicas/controle-estoque/internal/application/inventory"
)

// UseCase exportaciones puntuales del catálogo (no es una sincronización en vivo).
type UseCase struct {
	products ProductLister
	scanner  inventory.Scanner
	csv      CatalogWriter
	pdf      StockReportGenerator
	title    string
	now      func() time.Time
}

// NewUseCase construye el caso de uso. title encabeza el PDF.
func NewUseCase(products ProductLister, scanner inventory.Scanner, csv CatalogWriter, pdf StockReportGenerator, title string) *UseCase {
	return &UseCase{
		products: products,
		scanner:  scanner,
		csv:      csv,
		pdf:      pdf,
		title:    title,
		now:      time.Now,
	}
}

// ExportCSV escribe todos los productos (mismo orden que el listado) y devuelve cuántas filas escribió.
func (uc *UseCase) ExportCSV(ctx context.Context, w io.Writer) (int, error) {
	rows, err := uc.products.List(ctx, "")
	if err != nil {
		return 0, err
	}
	if err := uc.csv.WriteCatalog(w, rows); err != nil {
		return 0, fmt.Errorf("export csv: %w", err)
	}
	return len(rows), nil
}

// ExportPDF arma el reporte de inventario con la sección de stock bajo.
func (uc *UseCase) ExportPDF(ctx context.Context) ([]byte, error) {
	data, err := uc.BuildStockReport(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateStockReport(ctx, *data)
}

// BuildStockReport reúne catálogo, alertas y totales.
func (uc *UseCase) BuildStockReport(ctx context.Context) (*dto.StockReportData, error) {
	rows, err := uc.products.List(ctx, "")
	if err != nil {
		return nil, err
	}
	low, err := uc.scanner.Scan(ctx)
	if err != nil {
		return nil, err
	}
	data := &dto.StockReportData{
		Title:       uc.title,
		GeneratedAt: uc.now(),
		Products:    rows,
		LowStock:    low.Items,
		TotalValue:  decimal.Zero,
	}
	for _, p := range rows {
		data.TotalUnits += p.Quantity
		data.TotalValue = data.TotalValue.Add(p.Price.Mul(decimal.NewFromInt(p.Quantity)))
	}
	return data, nil
}
