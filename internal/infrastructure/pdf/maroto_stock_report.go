// Package pdf genera el relatório de estoque en PDF.
//
// Layout de la página A4:
//
//	┌───────────────────────────────────────────────┐
//	│  HEADER: título + fecha de generación         │
//	│  TABLA: ID | Nome | Categoria | Preço | Qtd   │
//	│  TOTALES: unidades / valor en estoque         │
//	│  ESTOQUE BAIXO: Produto | Qtd | Mínimo        │
//	└───────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/controle-estoque/internal/application/dto"
	"github.com/jhoicas/controle-estoque/pkg/currency"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// MarotoStockReport implementa report.StockReportGenerator usando Maroto v2.
type MarotoStockReport struct {
	money *currency.Formatter
}

// NewMarotoStockReport construye el generador; los precios salen en el formato de money.
func NewMarotoStockReport(money *currency.Formatter) *MarotoStockReport {
	return &MarotoStockReport{money: money}
}

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoStockReport) GenerateStockReport(_ context.Context, data dto.StockReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(data.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(productHeaderRow())
	m.AddRows(g.productRows(data)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(data))

	m.AddRows(line.NewRow(3))
	m.AddRows(lowStockRows(data)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(data dto.StockReportData) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(data.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%d produtos", len(data.Products)), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Gerado em "+data.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func productHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("ID", 1, align.Left),
		h("Nome", 4, align.Left),
		h("Categoria", 3, align.Left),
		h("Preço", 2, align.Right),
		h("Qtd", 1, align.Right),
		h("Mín", 1, align.Right),
	)
}

func (g *MarotoStockReport) productRows(data dto.StockReportData) []core.Row {
	rows := make([]core.Row, 0, len(data.Products))
	for _, p := range data.Products {
		category := "-"
		if p.CategoryName != nil {
			category = *p.CategoryName
		}
		rows = append(rows, row.New(6).Add(
			col.New(1).Add(text.New(strconv.FormatInt(p.ID, 10), props.Text{Size: 8, Top: 1})),
			col.New(4).Add(text.New(p.Name, props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(category, props.Text{Size: 8, Top: 1, Color: colorGray})),
			col.New(2).Add(text.New(g.money.Format(p.Price), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(1).Add(text.New(g.money.Int(p.Quantity), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(1).Add(text.New(g.money.Int(p.MinQuantity), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return rows
}

func (g *MarotoStockReport) totalsRow(data dto.StockReportData) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(
			label("Unidades:"),
			text.New("Valor em estoque:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 5}),
		),
		col.New(3).Add(
			value(g.money.Int(data.TotalUnits)),
			text.New(g.money.Format(data.TotalValue), props.Text{Size: 9, Align: align.Right, Right: 1, Top: 5}),
		),
	)
}

func lowStockRows(data dto.StockReportData) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("ESTOQUE BAIXO", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorAlert, Top: 1}),
		)),
	}
	if len(data.LowStock) == 0 {
		return append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Nenhum produto abaixo do mínimo.", props.Text{Size: 8, Color: colorGray, Top: 1}),
		)))
	}
	for _, item := range data.LowStock {
		rows = append(rows, row.New(6).Add(
			col.New(8).Add(text.New(item.ProductName, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("Qtd %d", item.Quantity), props.Text{Size: 8, Align: align.Right, Top: 1, Color: colorAlert})),
			col.New(2).Add(text.New(fmt.Sprintf("Mín %d", item.MinQuantity), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return rows
}
