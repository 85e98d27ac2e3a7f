// Package export escribe la instantánea del catálogo en CSV (UTF-8, separado por comas).
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/jhoicas/controle-estoque/internal/domain/entity"
)

// CatalogHeader encabezado fijo del archivo exportado; otras herramientas dependen de él.
var CatalogHeader = []string{"ID", "Nome", "Categoria", "Preco", "Quantidade", "MinEstoque"}

// CSVWriter implementa report.CatalogWriter.
type CSVWriter struct{}

// NewCSVWriter construye el writer.
func NewCSVWriter() *CSVWriter { return &CSVWriter{} }

// WriteCatalog escribe encabezado y una fila por producto. Categoría nula -> campo vacío.
func (CSVWriter) WriteCatalog(w io.Writer, rows []entity.ProductView) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CatalogHeader); err != nil {
		return err
	}
	for _, p := range rows {
		category := ""
		if p.CategoryName != nil {
			category = *p.CategoryName
		}
		record := []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			category,
			p.Price.String(),
			strconv.FormatInt(p.Quantity, 10),
			strconv.FormatInt(p.MinQuantity, 10),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
