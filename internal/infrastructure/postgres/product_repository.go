package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ong-esperanza/donaciones-api/internal/domain"
	"github.com/ong-esperanza/donaciones-api/internal/domain/entity"
	"github.com/ong-esperanza/donaciones-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, unit, minimum_stock, in_stock, is_active, category_id, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y devuelve su id.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) (int64, error) {
	query := `
		INSERT INTO products (name, unit, minimum_stock, in_stock, is_active, category_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		product.Name, product.Unit, product.MinimumStock, product.InStock,
		product.IsActive, product.CategoryID, product.CreatedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return id, nil
}

// GetByID obtiene un producto por id.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := r.scanOne(r.q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByNameAndCategory obtiene un producto por nombre y categoría (categoría nula incluida).
func (r *ProductRepo) GetByNameAndCategory(ctx context.Context, name string, categoryID *int64) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE lower(name) = lower($1) AND category_id IS NOT DISTINCT FROM $2`
	p, err := r.scanOne(r.q.QueryRow(ctx, query, name, categoryID))
	if err != nil {
		return nil, fmt.Errorf("get product by name: %w", err)
	}
	return p, nil
}

// GetForUpdate obtiene un producto bloqueando su fila. Solo tiene sentido
// dentro de una transacción.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	p, err := r.scanOne(r.q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("lock product: %w", err)
	}
	return p, nil
}

// UpdateStock fija el stock absoluto del producto.
func (r *ProductRepo) UpdateStock(ctx context.Context, id int64, inStock int) error {
	_, err := r.q.Exec(ctx,
		`UPDATE products SET in_stock = $2, updated_at = now() WHERE id = $1`,
		id, inStock,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

// Update actualiza los campos descriptivos. in_stock no se toca aquí.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, unit = $3, minimum_stock = $4, is_active = $5, category_id = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Unit, product.MinimumStock,
		product.IsActive, product.CategoryID, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List lista productos filtrados con paginación.
func (r *ProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	args := []any{}
	n := 0

	if filter.Name != "" {
		n++
		query += fmt.Sprintf(" AND name ILIKE '%%' || $%d || '%%'", n)
		args = append(args, filter.Name)
	}
	if filter.CategoryID != nil {
		n++
		query += fmt.Sprintf(" AND category_id = $%d", n)
		args = append(args, *filter.CategoryID)
	}
	if filter.IsActive != nil {
		n++
		query += fmt.Sprintf(" AND is_active = $%d", n)
		args = append(args, *filter.IsActive)
	}
	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Unit, &p.MinimumStock, &p.InStock,
			&p.IsActive, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.Unit, &p.MinimumStock, &p.InStock,
		&p.IsActive, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
