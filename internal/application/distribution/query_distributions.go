package distribution

import (
	"context"
	"fmt"

	"github.com/ong-esperanza/donaciones-api/internal/application/dto"
	"github.com/ong-esperanza/donaciones-api/internal/application/validation"
	"github.com/ong-esperanza/donaciones-api/internal/domain"
	"github.com/ong-esperanza/donaciones-api/internal/domain/repository"
)

// QueryDistributionsUseCase consulta y actualización de estado de entregas.
// Cambiar el estado no revierte stock: una entrega cancelada conserva el
// descuento aplicado al crearla.
type QueryDistributionsUseCase struct {
	distributions repository.DistributionRepository
}

func NewQueryDistributionsUseCase(distributions repository.DistributionRepository) *QueryDistributionsUseCase {
	return &QueryDistributionsUseCase{distributions: distributions}
}

// GetByID devuelve una entrega por id.
func (uc *QueryDistributionsUseCase) GetByID(ctx context.Context, id int64) (*dto.DistributionResponse, error) {
	d, err := uc.distributions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("consultando distribución %d: %w", id, err)
	}
	if d == nil {
		return nil, domain.NotFound("distribution", fmt.Sprintf("distribución %d no encontrada", id))
	}
	out := dto.FromDistribution(d)
	return &out, nil
}

// List devuelve entregas paginadas, de la más reciente a la más antigua.
func (uc *QueryDistributionsUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.DistributionListResponse, error) {
	page.DefaultPage()

	items, err := uc.distributions.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listando distribuciones: %w", err)
	}

	out := &dto.DistributionListResponse{
		Items: make([]dto.DistributionResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, d := range items {
		out.Items = append(out.Items, dto.FromDistribution(d))
	}
	return out, nil
}

// UpdateStatus cambia el estado de una entrega existente.
func (uc *QueryDistributionsUseCase) UpdateStatus(ctx context.Context, id int64, in dto.UpdateDistributionStatusRequest) (*dto.DistributionResponse, error) {
	if violations := validation.Struct(in); violations != nil {
		return nil, &domain.ValidationError{Violations: violations}
	}

	d, err := uc.distributions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("consultando distribución %d: %w", id, err)
	}
	if d == nil {
		return nil, domain.NotFound("distribution", fmt.Sprintf("distribución %d no encontrada", id))
	}

	if err := uc.distributions.UpdateStatus(ctx, id, in.Status); err != nil {
		return nil, fmt.Errorf("actualizando estado de la distribución %d: %w", id, err)
	}
	d.Status = in.Status

	out := dto.FromDistribution(d)
	return &out, nil
}
