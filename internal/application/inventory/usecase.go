package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/controle-estoque/internal/application/dto"
	"github.com/jhoicas/controle-estoque/internal/domain"
	"github.com/jhoicas/controle-estoque/internal/domain/entity"
	"github.com/jhoicas/controle-estoque/internal/domain/inventory"
	"github.com/jhoicas/controle-estoque/internal/domain/repository"
	"github.com/jhoicas/controle-estoque/pkg/validator"
)

const defaultAdjustNote = "ajuste manual"

// RegisterMovementUseCase registra entradas y salidas en el libro de movimientos y mantiene
// la cantidad en caché del producto en la misma transacción.
type RegisterMovementUseCase struct {
	txRunner  TxRunner
	movements repository.MovementRepository
	validate  validator.Validator
	now       func() time.Time
}

// Option configura el caso de uso.
type Option func(*RegisterMovementUseCase)

// WithClock reemplaza el reloj (tests).
func WithClock(now func() time.Time) Option {
	return func(uc *RegisterMovementUseCase) { uc.now = now }
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	movements repository.MovementRepository,
	validate validator.Validator,
	opts ...Option,
) *RegisterMovementUseCase {
	uc := &RegisterMovementUseCase{
		txRunner:  txRunner,
		movements: movements,
		validate:  validate,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// PostMovement inserta el movimiento, lee la cantidad actual, aplica entrada/salida y la sobrescribe.
// Si el producto no existe devuelve domain.ErrNotFound y la transacción se revierte
// (no queda un movimiento huérfano en el libro).
func (uc *RegisterMovementUseCase) PostMovement(ctx context.Context, in dto.PostMovementRequest) (*entity.Movement, error) {
	if err := uc.validate.Validate(in); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, validator.Describe(err))
	}

	mov := &entity.Movement{
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Date:      uc.timestamp(),
		Note:      in.Note,
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		return applyToProduct(ctx, productRepo, mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// AdjustStock lleva la cantidad del producto a Target registrando la diferencia como entrada o salida,
// de modo que la cantidad sigue coincidiendo con el libro. Devuelve nil si no había diferencia.
func (uc *RegisterMovementUseCase) AdjustStock(ctx context.Context, in dto.AdjustStockRequest) (*entity.Movement, error) {
	if err := uc.validate.Validate(in); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, validator.Describe(err))
	}
	note := in.Note
	if note == "" {
		note = defaultAdjustNote
	}

	var posted *entity.Movement
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetByID(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		typ, qty, ok, err := inventory.AdjustmentFor(product.Quantity, in.Target)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		mov := &entity.Movement{
			ProductID: product.ID,
			Type:      typ,
			Quantity:  qty,
			Date:      uc.timestamp(),
			Note:      note,
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		if err := productRepo.UpdateQuantity(ctx, product.ID, in.Target); err != nil {
			return err
		}
		posted = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posted, nil
}

// ListRecent devuelve los últimos movimientos, más reciente primero. limit <= 0 usa el valor por defecto.
func (uc *RegisterMovementUseCase) ListRecent(ctx context.Context, limit int) ([]entity.MovementView, error) {
	if limit <= 0 {
		limit = dto.DefaultMovementsLimit
	}
	return uc.movements.ListRecent(ctx, limit)
}

// timestamp hora local con precisión de segundos.
func (uc *RegisterMovementUseCase) timestamp() time.Time {
	return uc.now().Local().Truncate(time.Second)
}

func applyToProduct(ctx context.Context, productRepo repository.ProductRepository, mov *entity.Movement) error {
	product, err := productRepo.GetByID(ctx, mov.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	newQty, err := inventory.ApplyMovement(product.Quantity, mov.Type, mov.Quantity)
	if err != nil {
		return err
	}
	return productRepo.UpdateQuantity(ctx, product.ID, newQty)
}
