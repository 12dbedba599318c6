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

// CategoryUseCase alta y consulta de categorías de producto. También expone
// los sectores, dato maestro de solo lectura.
type CategoryUseCase struct {
	categories repository.CategoryRepository
	sectors    repository.SectorRepository
}

func NewCategoryUseCase(categories repository.CategoryRepository, sectors repository.SectorRepository) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, sectors: sectors}
}

// Create crea una categoría con nombre único.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if violations := validation.Struct(in); violations != nil {
		return nil, &domain.ValidationError{Violations: violations}
	}

	existing, err := uc.categories.GetByName(ctx, in.Name)
	if err != nil {
		return nil, fmt.Errorf("verificando duplicados: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("ya existe la categoría %q: %w", in.Name, domain.ErrDuplicate)
	}

	c := &entity.Category{Name: in.Name, CreatedAt: time.Now()}
	id, err := uc.categories.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("creando categoría: %w", err)
	}
	c.ID = id

	return &dto.CategoryResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}, nil
}

// List devuelve todas las categorías.
func (uc *CategoryUseCase) List(ctx context.Context) (*dto.CategoryListResponse, error) {
	items, err := uc.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listando categorías: %w", err)
	}

	out := &dto.CategoryListResponse{Items: make([]dto.CategoryResponse, 0, len(items))}
	for _, c := range items {
		out.Items = append(out.Items, dto.CategoryResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt})
	}
	return out, nil
}

// ListSectors devuelve todos los sectores.
func (uc *CategoryUseCase) ListSectors(ctx context.Context) ([]dto.SectorResponse, error) {
	items, err := uc.sectors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listando sectores: %w", err)
	}

	out := make([]dto.SectorResponse, 0, len(items))
	for _, s := range items {
		out = append(out, dto.SectorResponse{ID: s.ID, Name: s.Name})
	}
	return out, nil
}
