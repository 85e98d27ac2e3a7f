package repository

import (
	"context"

	"github.com/jhoicas/controle-estoque/internal/domain/entity"
)

// MovementRepository define el puerto del libro de movimientos (append-only).
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	ListRecent(ctx context.Context, limit int) ([]entity.MovementView, error)
	CountByProduct(ctx context.Context, productID int64) (int, error)
	// DeleteByProduct solo se usa con la política de borrado en cascada.
	DeleteByProduct(ctx context.Context, productID int64) error
}
