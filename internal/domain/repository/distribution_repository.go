package repository

import (
	"context"

	"github.com/ong-esperanza/donaciones-api/internal/domain/entity"
)

// DistributionRepository puerto de persistencia para FoodBasketDistribution.
type DistributionRepository interface {
	Create(ctx context.Context, distribution *entity.FoodBasketDistribution) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.FoodBasketDistribution, error)
	List(ctx context.Context, limit, offset int) ([]*entity.FoodBasketDistribution, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}
