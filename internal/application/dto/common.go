package dto

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultMovementsLimit límite cuando el llamador no indica uno válido.
const DefaultMovementsLimit = 100

// ParseIntOrZero convierte texto numérico del formulario; vacío o inválido -> 0 (nunca error).
func ParseIntOrZero(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// ParseDecimalOrZero igual que ParseIntOrZero para precios.
func ParseDecimalOrZero(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}
