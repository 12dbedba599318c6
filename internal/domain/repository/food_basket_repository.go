package repository

import (
	"context"

	"github.com/ong-esperanza/donaciones-api/internal/domain/entity"
)

// FoodBasketRepository puerto de persistencia para FoodBasket y sus items.
// La composición se reemplaza de forma atómica: DeleteItems + InsertItem por
// cada par, siempre dentro de la misma transacción.
type FoodBasketRepository interface {
	Create(ctx context.Context, basket *entity.FoodBasket) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.FoodBasket, error)
	List(ctx context.Context, limit, offset int) ([]*entity.FoodBasket, error)
	UpdateScalars(ctx context.Context, basket *entity.FoodBasket) error
	ListItems(ctx context.Context, basketID int64) ([]*entity.FoodBasketItem, error)
	DeleteItems(ctx context.Context, basketID int64) error
	InsertItem(ctx context.Context, item *entity.FoodBasketItem) error
}
