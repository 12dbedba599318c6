package repository

import (
	"context"

	"github.com/ong-esperanza/donaciones-api/internal/domain/entity"
)

// DonorRepository puerto de persistencia para Donor (borrado lógico).
type DonorRepository interface {
	Create(ctx context.Context, donor *entity.Donor) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Donor, error)
	GetByEmail(ctx context.Context, email string) (*entity.Donor, error)
	List(ctx context.Context, isActive *bool, limit, offset int) ([]*entity.Donor, error)
	Update(ctx context.Context, donor *entity.Donor) error
	SetActive(ctx context.Context, id int64, active bool) error
	SoftDelete(ctx context.Context, id int64) error
}
