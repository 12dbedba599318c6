package repository

import (
	"context"

	"github.com/ong-esperanza/donaciones-api/internal/domain/entity"
)

// CampaignRepository puerto de persistencia para Campaign.
type CampaignRepository interface {
	Create(ctx context.Context, campaign *entity.Campaign) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Campaign, error)
	List(ctx context.Context, isActive *bool, limit, offset int) ([]*entity.Campaign, error)
	Update(ctx context.Context, campaign *entity.Campaign) error
}
