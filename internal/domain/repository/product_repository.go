package repository

import (
	"context"

	"github.com/jhoicas/controle-estoque/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// Update sobrescribe todos los campos mutables, incluida la cantidad.
	Update(ctx context.Context, product *entity.Product) error
	// UpdateQuantity escribe solo la cantidad en caché (usado por el libro de movimientos).
	UpdateQuantity(ctx context.Context, id, quantity int64) error
	// List devuelve el catálogo ordenado por nombre. search vacío no filtra.
	List(ctx context.Context, search string) ([]entity.ProductView, error)
	Delete(ctx context.Context, id int64) error
}
