package entity

// Category representa una categoría de productos. Se crea por acción explícita y no se edita ni elimina.
type Category struct {
	ID   int64
	Name string // único
}
