package repository

import (
	"context"

	"github.com/ong-esperanza/donaciones-api/internal/domain/entity"
)

// FamilyRepository puerto de persistencia para Family (borrado lógico).
type FamilyRepository interface {
	Create(ctx context.Context, family *entity.Family) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Family, error)
	GetByCPF(ctx context.Context, cpf string) (*entity.Family, error)
	List(ctx context.Context, isActive *bool, limit, offset int) ([]*entity.Family, error)
	Update(ctx context.Context, family *entity.Family) error
	SetActive(ctx context.Context, id int64, active bool) error
	SoftDelete(ctx context.Context, id int64) error
}
