// Package usecase reúne los casos de uso CRUD del catálogo y los actores:
// productos, categorías, donantes, colaboradores, familias, campañas y
// usuarios. Los flujos transaccionales viven en sus propios paquetes
// (donation, distribution, basket).
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ong-esperanza/donaciones-api/internal/application/dto"
	"github.com/ong-esperanza/donaciones-api/internal/application/validation"
	"github.com/ong-esperanza/donaciones-api/internal/domain"
	"github.com/ong-esperanza/donaciones-api/internal/domain/entity"
	"github.com/ong-esperanza/donaciones-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos. El stock no se modifica por aquí:
// solo las donaciones, las distribuciones y el ajuste explícito lo tocan.
type ProductUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

func NewProductUseCase(products repository.ProductRepository, categories repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{products: products, categories: categories}
}

// Create crea un producto. Nombre + categoría deben ser únicos.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if violations := validation.Struct(in); violations != nil {
		return nil, &domain.ValidationError{Violations: violations}
	}

	if in.CategoryID != nil {
		category, err := uc.categories.GetByID(ctx, *in.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("verificando categoría: %w", err)
		}
		if category == nil {
			return nil, domain.NotFound("category", fmt.Sprintf("categoría %d no encontrada", *in.CategoryID))
		}
	}

	existing, err := uc.products.GetByNameAndCategory(ctx, in.Name, in.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("verificando duplicados: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("ya existe un producto %q en esa categoría: %w", in.Name, domain.ErrDuplicate)
	}

	p := &entity.Product{
		Name:         in.Name,
		Unit:         in.Unit,
		MinimumStock: in.MinimumStock,
		InStock:      in.InStock,
		IsActive:     true,
		CategoryID:   in.CategoryID,
		CreatedAt:    time.Now(),
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}

	id, err := uc.products.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("creando producto: %w", err)
	}
	p.ID = id

	out := dto.FromProduct(p)
	return &out, nil
}

// GetByID devuelve un producto por id.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("consultando producto %d: %w", id, err)
	}
	if p == nil {
		return nil, domain.NotFound("product", fmt.Sprintf("producto %d no encontrado", id))
	}
	out := dto.FromProduct(p)
	return &out, nil
}

// List devuelve productos filtrados y paginados.
func (uc *ProductUseCase) List(ctx context.Context, filter repository.ProductFilter) (*dto.ProductListResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	items, err := uc.products.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listando productos: %w", err)
	}

	out := &dto.ProductListResponse{
		Items: make([]dto.ProductResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}
	for _, p := range items {
		out.Items = append(out.Items, dto.FromProduct(p))
	}
	return out, nil
}

// Update actualiza los campos descriptivos de un producto. in_stock se ignora
// deliberadamente aunque venga en el cuerpo.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if violations := validation.Struct(in); violations != nil {
		return nil, &domain.ValidationError{Violations: violations}
	}

	p, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("consultando producto %d: %w", id, err)
	}
	if p == nil {
		return nil, domain.NotFound("product", fmt.Sprintf("producto %d no encontrado", id))
	}

	if in.CategoryID != nil {
		category, err := uc.categories.GetByID(ctx, *in.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("verificando categoría: %w", err)
		}
		if category == nil {
			return nil, domain.NotFound("category", fmt.Sprintf("categoría %d no encontrada", *in.CategoryID))
		}
		p.CategoryID = in.CategoryID
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Unit != nil {
		p.Unit = *in.Unit
	}
	if in.MinimumStock != nil {
		p.MinimumStock = *in.MinimumStock
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	now := time.Now()
	p.UpdatedAt = &now

	if err := uc.products.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("actualizando producto %d: %w", id, err)
	}

	out := dto.FromProduct(p)
	return &out, nil
}
