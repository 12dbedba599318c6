package repository

import (
	"context"

	"github.com/ong-esperanza/donaciones-api/internal/domain/entity"
)

// SectorRepository puerto de lectura para Sector (dato maestro sembrado).
type SectorRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Sector, error)
	List(ctx context.Context) ([]*entity.Sector, error)
}
