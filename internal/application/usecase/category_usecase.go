package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/controle-estoque/internal/application/dto"
	"github.com/jhoicas/controle-estoque/internal/domain"
	"github.com/jhoicas/controle-estoque/internal/domain/entity"
	"github.com/jhoicas/controle-estoque/internal/domain/repository"
	"github.com/jhoicas/controle-estoque/pkg/validator"
)

// CategoryUseCase alta y consulta de categorías. Las categorías no se editan ni se eliminan.
type CategoryUseCase struct {
	repo     repository.CategoryRepository
	validate validator.Validator
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, validate validator.Validator) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, validate: validate}
}

// Add crea la categoría. Devuelve false (sin error) si el nombre ya existe;
// cualquier otro error de almacenamiento se propaga.
func (uc *CategoryUseCase) Add(ctx context.Context, name string) (bool, error) {
	in := dto.CategoryRequest{Name: normalizeName(name)}
	if err := uc.validate.Validate(in); err != nil {
		return false, fmt.Errorf("%w: %s", domain.ErrInvalidInput, validator.Describe(err))
	}
	err := uc.repo.Create(ctx, &entity.Category{Name: in.Name})
	if errors.Is(err, domain.ErrDuplicate) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// List devuelve las categorías ordenadas por nombre.
func (uc *CategoryUseCase) List(ctx context.Context) ([]entity.Category, error) {
	return uc.repo.List(ctx)
}

// ResolveID busca la categoría por nombre exacto. Vacío o desconocido -> nil (producto sin categoría).
func (uc *CategoryUseCase) ResolveID(ctx context.Context, name string) (*int64, error) {
	name = normalizeName(name)
	if name == "" {
		return nil, nil
	}
	c, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	id := c.ID
	return &id, nil
}

// normalizeName recorta espacios y normaliza a NFC para que "é" compuesto y descompuesto sean el mismo nombre.
func normalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
