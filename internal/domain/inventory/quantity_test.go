package inventory_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/controle-estoque/internal/domain"
	"github.com/jhoicas/controle-estoque/internal/domain/entity"
	"github.com/jhoicas/controle-estoque/internal/domain/inventory"
)

func ptr(v int64) *int64 { return &v }

func TestApplyMovement_SumaDeEntradasYSalidas(t *testing.T) {
	steps := []struct {
		typ string
		qty int64
	}{
		{entity.MovementTypeIn, 10},
		{entity.MovementTypeOut, 3},
		{entity.MovementTypeIn, 5},
		{entity.MovementTypeOut, 20},
	}
	var qty int64
	for _, s := range steps {
		var err error
		qty, err = inventory.ApplyMovement(qty, s.typ, s.qty)
		require.NoError(t, err)
	}
	assert.Equal(t, int64(-8), qty, "la salida puede dejar la cantidad negativa")
}

func TestApplyMovement_TipoInvalido(t *testing.T) {
	qty, err := inventory.ApplyMovement(7, "ajuste", 2)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, int64(7), qty)
}

func TestAdjustmentFor(t *testing.T) {
	typ, qty, ok, err := inventory.AdjustmentFor(4, 10)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, entity.MovementTypeIn, typ)
	assert.Equal(t, int64(6), qty)

	typ, qty, ok, err = inventory.AdjustmentFor(4, -1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, entity.MovementTypeOut, typ)
	assert.Equal(t, int64(5), qty)

	_, _, ok, err = inventory.AdjustmentFor(4, 4)
	require.NoError(t, err)
	assert.False(t, ok, "sin diferencia no se registra movimiento")
}

func TestApplyMovement_Desborde(t *testing.T) {
	cases := []struct {
		name     string
		current  int64
		typ      string
		quantity int64
		want     int64
		wantErr  bool
	}{
		{"entrada justo en el máximo", math.MaxInt64 - 5, entity.MovementTypeIn, 5, math.MaxInt64, false},
		{"entrada que desborda", math.MaxInt64 - 1, entity.MovementTypeIn, 5, 0, true},
		{"saida justo en el mínimo", math.MinInt64 + 5, entity.MovementTypeOut, 5, math.MinInt64, false},
		{"saida que desborda", math.MinInt64 + 1, entity.MovementTypeOut, 5, 0, true},
		{"saida desde cero", 0, entity.MovementTypeOut, math.MaxInt64, -math.MaxInt64, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := inventory.ApplyMovement(tc.current, tc.typ, tc.quantity)
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				assert.Equal(t, tc.current, got, "la cantidad no cambia")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAdjustmentFor_Desborde(t *testing.T) {
	_, _, ok, err := inventory.AdjustmentFor(-10, math.MaxInt64)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.False(t, ok)

	_, _, _, err = inventory.AdjustmentFor(10, math.MinInt64)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	typ, qty, ok, err := inventory.AdjustmentFor(0, math.MaxInt64)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, entity.MovementTypeIn, typ)
	assert.Equal(t, int64(math.MaxInt64), qty)
}

func TestIsLowStock(t *testing.T) {
	assert.True(t, inventory.IsLowStock(ptr(2), ptr(5)))
	assert.True(t, inventory.IsLowStock(ptr(5), ptr(5)), "la igualdad cuenta como violación")
	assert.False(t, inventory.IsLowStock(ptr(10), ptr(5)))
	assert.False(t, inventory.IsLowStock(ptr(5), nil), "sin umbral no hay alerta")
	assert.False(t, inventory.IsLowStock(nil, ptr(5)))
}
