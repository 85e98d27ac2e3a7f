package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/controle-estoque/internal/application/dto"
	"github.com/jhoicas/controle-estoque/internal/application/inventory"
	"github.com/jhoicas/controle-estoque/internal/domain"
	"github.com/jhoicas/controle-estoque/internal/domain/entity"
	"github.com/jhoicas/controle-estoque/internal/domain/repository"
	"github.com/jhoicas/controle-estoque/pkg/config"
	"github.com/jhoicas/controle-estoque/pkg/validator"
)

// ProductUseCase casos de uso CRUD para productos.
// Update sobrescribe también la cantidad: es la vía de corrección manual y rompe a propósito
// la igualdad cantidad == suma del libro (ver RegisterMovementUseCase.AdjustStock para la alternativa).
type ProductUseCase struct {
	repo         repository.ProductRepository
	movements    repository.MovementRepository
	txRunner     inventory.TxRunner
	validate     validator.Validator
	deletePolicy string
}

// NewProductUseCase construye el caso de uso. deletePolicy es uno de config.DeletePolicy*.
func NewProductUseCase(
	repo repository.ProductRepository,
	movements repository.MovementRepository,
	txRunner inventory.TxRunner,
	validate validator.Validator,
	deletePolicy string,
) *ProductUseCase {
	if deletePolicy == "" {
		deletePolicy = config.DeletePolicyDangling
	}
	return &ProductUseCase{
		repo:         repo,
		movements:    movements,
		txRunner:     txRunner,
		validate:     validate,
		deletePolicy: deletePolicy,
	}
}

// Create crea un producto y devuelve su ID. El nombre se guarda tal cual llega (solo las categorías se normalizan).
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (int64, error) {
	if err := uc.validate.Validate(in); err != nil {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, validator.Describe(err))
	}
	product := &entity.Product{
		Name:        in.Name,
		CategoryID:  in.CategoryID,
		Price:       in.Price,
		Quantity:    in.Quantity,
		MinQuantity: in.MinQuantity,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return 0, err
	}
	return product.ID, nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	return uc.repo.GetByID(ctx, id)
}

// Update sobrescribe todos los campos mutables. domain.ErrNotFound si el producto no existe.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.ProductRequest) error {
	if err := uc.validate.Validate(in); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, validator.Describe(err))
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	product.Name = in.Name
	product.CategoryID = in.CategoryID
	product.Price = in.Price
	product.Quantity = in.Quantity
	product.MinQuantity = in.MinQuantity
	return uc.repo.Update(ctx, product)
}

// List lista productos ordenados por nombre; search filtra por nombre de producto o de categoría.
func (uc *ProductUseCase) List(ctx context.Context, search string) ([]entity.ProductView, error) {
	return uc.repo.List(ctx, search)
}

// Delete elimina un producto según la política configurada:
// dangling borra sin mirar el historial, restrict falla con domain.ErrConflict si hay movimientos
// y cascade borra producto y movimientos en una transacción.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	switch uc.deletePolicy {
	case config.DeletePolicyDangling:
		return uc.repo.Delete(ctx, id)
	case config.DeletePolicyRestrict:
		n, err := uc.movements.CountByProduct(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.ErrConflict
		}
		return uc.repo.Delete(ctx, id)
	case config.DeletePolicyCascade:
		return uc.txRunner.Run(ctx, func(
			movRepo repository.MovementRepository,
			productRepo repository.ProductRepository,
		) error {
			if err := movRepo.DeleteByProduct(ctx, id); err != nil {
				return err
			}
			return productRepo.Delete(ctx, id)
		})
	default:
		return fmt.Errorf("política de borrado desconocida %q: %w", uc.deletePolicy, domain.ErrInvalidInput)
	}
}
