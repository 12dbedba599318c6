package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ong-esperanza/donaciones-api/internal/domain/entity"
	"github.com/ong-esperanza/donaciones-api/internal/domain/repository"
)

var _ repository.FoodBasketRepository = (*FoodBasketRepo)(nil)

// FoodBasketRepo implementación del puerto FoodBasketRepository sobre PostgreSQL (usable con pool o tx).
type FoodBasketRepo struct {
	q Querier
}

// NewFoodBasketRepository construye el adaptador de persistencia para cestas. Pasar pool o tx (Querier).
func NewFoodBasketRepository(q Querier) *FoodBasketRepo {
	return &FoodBasketRepo{q: q}
}

// Create persiste una cesta (sin items) y devuelve su id.
func (r *FoodBasketRepo) Create(ctx context.Context, basket *entity.FoodBasket) (int64, error) {
	query := `
		INSERT INTO food_baskets (name, description, is_active, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		basket.Name, basket.Description, basket.IsActive, basket.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert food basket: %w", err)
	}
	return id, nil
}

// GetByID obtiene una cesta por id.
func (r *FoodBasketRepo) GetByID(ctx context.Context, id int64) (*entity.FoodBasket, error) {
	query := `SELECT id, name, description, is_active, created_at, updated_at FROM food_baskets WHERE id = $1`
	var b entity.FoodBasket
	err := r.q.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Name, &b.Description, &b.IsActive, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get food basket: %w", err)
	}
	return &b, nil
}

// List lista cestas con paginación.
func (r *FoodBasketRepo) List(ctx context.Context, limit, offset int) ([]*entity.FoodBasket, error) {
	query := `
		SELECT id, name, description, is_active, created_at, updated_at
		FROM food_baskets ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list food baskets: %w", err)
	}
	defer rows.Close()

	var out []*entity.FoodBasket
	for rows.Next() {
		var b entity.FoodBasket
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.IsActive, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan food basket: %w", err)
		}
		out = append(out, &b)
	}
	return out, rows.Err()
}

// UpdateScalars actualiza nombre, descripción y estado. Los items van aparte.
func (r *FoodBasketRepo) UpdateScalars(ctx context.Context, basket *entity.FoodBasket) error {
	query := `
		UPDATE food_baskets SET name = $2, description = $3, is_active = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		basket.ID, basket.Name, basket.Description, basket.IsActive, basket.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update food basket: %w", err)
	}
	return nil
}

// ListItems devuelve la composición de una cesta ordenada por product_id.
// El orden estable evita interbloqueos cuando dos entregas bloquean los
// mismos productos.
func (r *FoodBasketRepo) ListItems(ctx context.Context, basketID int64) ([]*entity.FoodBasketItem, error) {
	query := `
		SELECT id, food_basket_id, product_id, quantity, created_at, updated_at
		FROM food_basket_items WHERE food_basket_id = $1 ORDER BY product_id`
	rows, err := r.q.Query(ctx, query, basketID)
	if err != nil {
		return nil, fmt.Errorf("list basket items: %w", err)
	}
	defer rows.Close()

	var out []*entity.FoodBasketItem
	for rows.Next() {
		var item entity.FoodBasketItem
		if err := rows.Scan(&item.ID, &item.FoodBasketID, &item.ProductID, &item.Quantity,
			&item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan basket item: %w", err)
		}
		out = append(out, &item)
	}
	return out, rows.Err()
}

// DeleteItems borra toda la composición de una cesta.
func (r *FoodBasketRepo) DeleteItems(ctx context.Context, basketID int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM food_basket_items WHERE food_basket_id = $1`, basketID)
	if err != nil {
		return fmt.Errorf("delete basket items: %w", err)
	}
	return nil
}

// InsertItem inserta un item de composición.
func (r *FoodBasketRepo) InsertItem(ctx context.Context, item *entity.FoodBasketItem) error {
	query := `
		INSERT INTO food_basket_items (food_basket_id, product_id, quantity, created_at)
		VALUES ($1, $2, $3, now())`
	_, err := r.q.Exec(ctx, query, item.FoodBasketID, item.ProductID, item.Quantity)
	if err != nil {
		return fmt.Errorf("insert basket item: %w", err)
	}
	return nil
}
