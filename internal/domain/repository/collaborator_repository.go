package repository

import (
	"context"

	"github.com/ong-esperanza/donaciones-api/internal/domain/entity"
)

// CollaboratorRepository puerto de persistencia para Collaborator (borrado lógico).
type CollaboratorRepository interface {
	Create(ctx context.Context, collaborator *entity.Collaborator) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Collaborator, error)
	GetByEmail(ctx context.Context, email string) (*entity.Collaborator, error)
	GetByRegistration(ctx context.Context, registration string) (*entity.Collaborator, error)
	List(ctx context.Context, isActive *bool, limit, offset int) ([]*entity.Collaborator, error)
	Update(ctx context.Context, collaborator *entity.Collaborator) error
	SetActive(ctx context.Context, id int64, active bool) error
	SoftDelete(ctx context.Context, id int64) error
}
