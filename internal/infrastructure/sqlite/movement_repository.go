package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jhoicas/controle-estoque/internal/domain/entity"
	"github.com/jhoicas/controle-estoque/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación sobre SQLite (usable con DB o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar DB o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento y completa su ID.
func (r *MovementRepo) Create(ctx context.Context, movement *entity.Movement) error {
	res, err := execute(ctx, r.q, `
		INSERT INTO movimentacoes (produto_id, tipo, quantidade, data, observacao)
		VALUES (?, ?, ?, ?, ?)`,
		movement.ProductID, movement.Type, movement.Quantity,
		movement.Date.Format(entity.MovementTimeLayout), nullableString(movement.Note),
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("movement id: %w", err)
	}
	movement.ID = id
	return nil
}

// ListRecent lista los últimos movimientos (más reciente primero; empates por orden de inserción).
// Los movimientos de productos eliminados no aparecen (JOIN interno).
func (r *MovementRepo) ListRecent(ctx context.Context, limit int) ([]entity.MovementView, error) {
	var list []entity.MovementView
	err := fetch(ctx, r.q, `
		SELECT m.id, p.nome, m.tipo, m.quantidade, m.data, m.observacao
		FROM movimentacoes m JOIN produtos p ON m.produto_id = p.id
		ORDER BY m.data DESC, m.id DESC
		LIMIT ?`, func(rows *sql.Rows) error {
		var (
			v    entity.MovementView
			date string
			note sql.NullString
		)
		if err := rows.Scan(&v.ID, &v.ProductName, &v.Type, &v.Quantity, &date, &note); err != nil {
			return fmt.Errorf("scan movement: %w", err)
		}
		parsed, err := time.ParseInLocation(entity.MovementTimeLayout, date, time.Local)
		if err != nil {
			return fmt.Errorf("parse movement date %q: %w", date, err)
		}
		v.Date = parsed
		v.Note = note.String
		list = append(list, v)
		return nil
	}, limit)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return list, nil
}

// CountByProduct cuenta los movimientos registrados para un producto.
func (r *MovementRepo) CountByProduct(ctx context.Context, productID int64) (int, error) {
	var n int
	err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM movimentacoes WHERE produto_id = ?`, productID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return n, nil
}

// DeleteByProduct elimina el historial de un producto (solo política cascade).
func (r *MovementRepo) DeleteByProduct(ctx context.Context, productID int64) error {
	if _, err := execute(ctx, r.q, `DELETE FROM movimentacoes WHERE produto_id = ?`, productID); err != nil {
		return fmt.Errorf("delete movements: %w", err)
	}
	return nil
}
