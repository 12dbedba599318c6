package repository

import (
	"context"
	"time"

	"github.com/ong-esperanza/donaciones-api/internal/domain/entity"
)

// DonationFilter filtros para listar donaciones.
type DonationFilter struct {
	Type           string
	DonorID        *int64
	CollaboratorID *int64
	CampaignID     *int64
	ProductID      *int64
	From           *time.Time
	To             *time.Time
	Limit          int
	Offset         int
}

// DonationRepository puerto de persistencia para Donation.
// Las donaciones son inmutables: no hay Update ni Delete.
type DonationRepository interface {
	Create(ctx context.Context, donation *entity.Donation) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Donation, error)
	List(ctx context.Context, filter DonationFilter) ([]*entity.Donation, error)
}
