package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/controle-estoque/internal/domain"
)

func TestCategoryAdd_DuplicadoDevuelveFalse(t *testing.T) {
	ctx := context.Background()
	uc := newCategoryUseCase(openDB(t))

	ok, err := uc.Add(ctx, "Ferragens")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.Add(ctx, "Ferragens")
	require.NoError(t, err)
	assert.False(t, ok)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCategoryAdd_NormalizaNombre(t *testing.T) {
	ctx := context.Background()
	uc := newCategoryUseCase(openDB(t))

	ok, err := uc.Add(ctx, "  El\u00e9trica ")
	require.NoError(t, err)
	assert.True(t, ok)

	// "é" descompuesto (e + acento combinante) es el mismo nombre tras NFC.
	ok, err = uc.Add(ctx, "Ele\u0301trica")
	require.NoError(t, err)
	assert.False(t, ok)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "El\u00e9trica", list[0].Name)
}

func TestCategoryAdd_NombreVacio(t *testing.T) {
	uc := newCategoryUseCase(openDB(t))

	_, err := uc.Add(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoryList_OrdenadoPorNombre(t *testing.T) {
	ctx := context.Background()
	uc := newCategoryUseCase(openDB(t))
	for _, name := range []string{"Tintas", "Ferragens", "Madeira"} {
		_, err := uc.Add(ctx, name)
		require.NoError(t, err)
	}

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Ferragens", list[0].Name)
	assert.Equal(t, "Madeira", list[1].Name)
	assert.Equal(t, "Tintas", list[2].Name)
}

func TestCategoryResolveID(t *testing.T) {
	ctx := context.Background()
	uc := newCategoryUseCase(openDB(t))
	_, err := uc.Add(ctx, "Ferragens")
	require.NoError(t, err)

	id, err := uc.ResolveID(ctx, "Ferragens")
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Positive(t, *id)

	id, err = uc.ResolveID(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, id)

	id, err = uc.ResolveID(ctx, "Inexistente")
	require.NoError(t, err)
	assert.Nil(t, id)
}
