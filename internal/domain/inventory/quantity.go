package inventory

import (
	"fmt"
	"math"

	"github.com/jhoicas/controle-estoque/internal/domain"
	"github.com/jhoicas/controle-estoque/internal/domain/entity"
)

// ApplyMovement calcula la nueva cantidad en caché tras un movimiento (servicio de dominio).
// entrada suma, saida resta. No hay piso en cero: una salida puede dejar la cantidad negativa.
// Un resultado fuera de int64 es domain.ErrInvalidInput y current queda intacto.
func ApplyMovement(current int64, movementType string, quantity int64) (int64, error) {
	switch movementType {
	case entity.MovementTypeIn:
		if addOverflows(current, quantity) {
			return current, fmt.Errorf("entrada de %d desborda la cantidad %d: %w", quantity, current, domain.ErrInvalidInput)
		}
		return current + quantity, nil
	case entity.MovementTypeOut:
		if subOverflows(current, quantity) {
			return current, fmt.Errorf("saida de %d desborda la cantidad %d: %w", quantity, current, domain.ErrInvalidInput)
		}
		return current - quantity, nil
	default:
		return current, domain.ErrInvalidInput
	}
}

// AdjustmentFor devuelve el movimiento que lleva la cantidad actual al objetivo.
// ok es false cuando no hay diferencia y no hace falta registrar nada.
// Una diferencia que no cabe en int64 es domain.ErrInvalidInput.
func AdjustmentFor(current, target int64) (movementType string, quantity int64, ok bool, err error) {
	switch {
	case target > current:
		if subOverflows(target, current) {
			return "", 0, false, fmt.Errorf("ajuste de %d a %d: %w", current, target, domain.ErrInvalidInput)
		}
		return entity.MovementTypeIn, target - current, true, nil
	case target < current:
		if subOverflows(current, target) {
			return "", 0, false, fmt.Errorf("ajuste de %d a %d: %w", current, target, domain.ErrInvalidInput)
		}
		return entity.MovementTypeOut, current - target, true, nil
	default:
		return "", 0, false, nil
	}
}

// IsLowStock indica si un producto viola su umbral mínimo.
// Sin cantidad o sin umbral (NULL) no hay alerta; la igualdad cuenta como violación.
func IsLowStock(quantity, minQuantity *int64) bool {
	if quantity == nil || minQuantity == nil {
		return false
	}
	return *quantity <= *minQuantity
}

func addOverflows(a, b int64) bool {
	if b > 0 {
		return a > math.MaxInt64-b
	}
	return a < math.MinInt64-b
}

func subOverflows(a, b int64) bool {
	if b > 0 {
		return a < math.MinInt64+b
	}
	return a > math.MaxInt64+b
}
