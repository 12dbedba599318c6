// Package basket implementa la gestión de cestas básicas y su composición.
package basket

import (
	"context"

	"github.com/ong-esperanza/donaciones-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción. El reemplazo de la
// composición (borrar todo, insertar todo) depende de él para ser atómico.
type TxRunner interface {
	RunBasket(ctx context.Context, fn func(
		baskets repository.FoodBasketRepository,
	) error) error
}
