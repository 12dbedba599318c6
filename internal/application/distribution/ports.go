// Package distribution implementa la entrega de cestas básicas a familias
// con descuento transaccional de stock, todo o nada.
package distribution

import (
	"context"

	"github.com/ong-esperanza/donaciones-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción. Si fn devuelve error se
// hace rollback y ningún descuento de stock queda aplicado. El repo de
// cestas ligado a la transacción permite leer la composición como parte
// de la misma unidad de trabajo.
type TxRunner interface {
	RunDistribution(ctx context.Context, fn func(
		distributions repository.DistributionRepository,
		products repository.ProductRepository,
		baskets repository.FoodBasketRepository,
	) error) error
}
