package entity

import "time"

// Tipos de movimiento (valores persistidos en movimentacoes.tipo).
const (
	MovementTypeIn  = "entrada"
	MovementTypeOut = "saida"
)

// MovementTimeLayout formato de movimentacoes.data (ISO-8601, precisión de segundos, hora local).
const MovementTimeLayout = "2006-01-02 15:04:05"

// Movement representa un evento inmutable del libro de movimientos (append-only).
type Movement struct {
	ID        int64
	ProductID int64
	Type      string // entrada, saida
	Quantity  int64  // siempre positivo; el signo lo da Type
	Date      time.Time
	Note      string
}

// MovementView movimiento con el nombre del producto (listado de últimos movimientos).
type MovementView struct {
	ID          int64
	ProductName string
	Type        string
	Quantity    int64
	Date        time.Time
	Note        string
}
