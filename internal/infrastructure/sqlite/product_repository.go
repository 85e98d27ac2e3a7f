package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/controle-estoque/internal/domain/entity"
	"github.com/jhoicas/controle-estoque/internal/domain/inventory"
	"github.com/jhoicas/controle-estoque/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre SQLite (usable con DB o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar DB o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productViewSelect = `
	SELECT p.id, p.nome, c.nome, COALESCE(p.preco, 0), p.quantidade, p.min_estoque
	FROM produtos p LEFT JOIN categorias c ON p.categoria_id = c.id`

// Create persiste un nuevo producto y completa su ID.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	res, err := execute(ctx, r.q, `
		INSERT INTO produtos (nome, categoria_id, preco, quantidade, min_estoque)
		VALUES (?, ?, ?, ?, ?)`,
		product.Name, nullableInt64(product.CategoryID), product.Price.InexactFloat64(),
		product.Quantity, product.MinQuantity,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("product id: %w", err)
	}
	product.ID = id
	return nil
}

// GetByID obtiene un producto por ID; nil si no existe. Columnas numéricas NULL se leen como 0.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	var (
		p        entity.Product
		category sql.NullInt64
		price    float64
	)
	err := r.q.QueryRowContext(ctx, `
		SELECT id, nome, categoria_id, COALESCE(preco, 0), COALESCE(quantidade, 0), COALESCE(min_estoque, 0)
		FROM produtos WHERE id = ?`, id).Scan(
		&p.ID, &p.Name, &category, &price, &p.Quantity, &p.MinQuantity,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	p.CategoryID = int64Ptr(category)
	p.Price = decimal.NewFromFloat(price)
	return &p, nil
}

// Update sobrescribe nombre, categoría, precio, cantidad y mínimo.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	_, err := execute(ctx, r.q, `
		UPDATE produtos SET nome = ?, categoria_id = ?, preco = ?, quantidade = ?, min_estoque = ?
		WHERE id = ?`,
		product.Name, nullableInt64(product.CategoryID), product.Price.InexactFloat64(),
		product.Quantity, product.MinQuantity, product.ID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateQuantity actualiza solo la cantidad en caché (usado por el libro de movimientos).
func (r *ProductRepo) UpdateQuantity(ctx context.Context, id, quantity int64) error {
	_, err := execute(ctx, r.q, `UPDATE produtos SET quantidade = ? WHERE id = ?`, quantity, id)
	if err != nil {
		return fmt.Errorf("update product quantity: %w", err)
	}
	return nil
}

// List lista el catálogo ordenado por nombre. Cantidad y mínimo NULL se muestran como 0. Con search filtra por nombre de producto O de categoría
// (subcadena sensible a mayúsculas: instr, no LIKE).
func (r *ProductRepo) List(ctx context.Context, search string) ([]entity.ProductView, error) {
	query := productViewSelect
	var args []any
	if search != "" {
		query += ` WHERE instr(p.nome, ?) > 0 OR instr(c.nome, ?) > 0`
		args = append(args, search, search)
	}
	query += ` ORDER BY p.nome, p.id`

	var list []entity.ProductView
	err := fetch(ctx, r.q, query, func(rows *sql.Rows) error {
		var (
			v           entity.ProductView
			category    sql.NullString
			price       float64
			qty, minQty sql.NullInt64
		)
		if err := rows.Scan(&v.ID, &v.Name, &category, &price, &qty, &minQty); err != nil {
			return fmt.Errorf("scan product: %w", err)
		}
		v.Quantity = qty.Int64
		v.MinQuantity = minQty.Int64
		v.LowStock = inventory.IsLowStock(int64Ptr(qty), int64Ptr(minQty))
		if category.Valid {
			name := category.String
			v.CategoryName = &name
		}
		v.Price = decimal.NewFromFloat(price)
		list = append(list, v)
		return nil
	}, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return list, nil
}

// Delete elimina un producto por ID. No revisa movimientos: la política de borrado vive en el caso de uso.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	_, err := execute(ctx, r.q, `DELETE FROM produtos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
