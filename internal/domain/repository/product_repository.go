package repository

import (
	"context"

	"github.com/ong-esperanza/donaciones-api/internal/domain/entity"
)

// ProductFilter filtros para listar productos.
type ProductFilter struct {
	Name       string
	CategoryID *int64
	IsActive   *bool
	Limit      int
	Offset     int
}

// ProductRepository puerto de persistencia para Product.
// GetForUpdate bloquea la fila (SELECT FOR UPDATE) y solo tiene sentido dentro
// de una transacción; es la única vía legítima para leer stock que se va a mutar.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetByNameAndCategory(ctx context.Context, name string, categoryID *int64) (*entity.Product, error)
	GetForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	UpdateStock(ctx context.Context, id int64, inStock int) error
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
}
