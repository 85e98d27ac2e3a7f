package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo.
// Quantity es un valor en caché: se mantiene incrementalmente con cada movimiento,
// salvo la corrección manual vía UpdateProduct.
type Product struct {
	ID          int64
	Name        string
	CategoryID  *int64 // nil si no tiene categoría
	Price       decimal.Decimal
	Quantity    int64
	MinQuantity int64 // umbral de alerta
}

// ProductView fila desnormalizada del listado (nombre de categoría en lugar del ID).
type ProductView struct {
	ID           int64
	Name         string
	CategoryName *string // nil si el producto no tiene categoría
	Price        decimal.Decimal
	Quantity     int64
	MinQuantity  int64
	LowStock     bool // mismo criterio que el escáner: falso si cantidad o umbral son NULL
}

// StockLevel cantidad y umbral tal como están guardados; nil cuando la columna es NULL.
type StockLevel struct {
	ProductID   int64
	ProductName string
	Quantity    *int64
	MinQuantity *int64
}
