package dto

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CategoryRequest entrada para crear una categoría.
type CategoryRequest struct {
	Name string `validate:"notblank,max=200"`
}

// ProductRequest entrada para crear o sobrescribir un producto.
type ProductRequest struct {
	Name        string `validate:"notblank,max=200"`
	CategoryID  *int64
	Price       decimal.Decimal
	Quantity    int64
	MinQuantity int64
}

// ProductForm valores tal como llegan de la capa de presentación (texto libre).
type ProductForm struct {
	Name        string
	Category    string // nombre de categoría; vacío = sin categoría
	Price       string
	Quantity    string
	MinQuantity string
}

// ToRequest convierte el formulario. Los campos numéricos que no parsean valen 0;
// la categoría la resuelve el llamador a partir de Category.
func (f ProductForm) ToRequest(categoryID *int64) ProductRequest {
	return ProductRequest{
		Name:        strings.TrimSpace(f.Name),
		CategoryID:  categoryID,
		Price:       ParseDecimalOrZero(f.Price),
		Quantity:    ParseIntOrZero(f.Quantity),
		MinQuantity: ParseIntOrZero(f.MinQuantity),
	}
}
