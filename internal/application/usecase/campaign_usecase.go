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

// CampaignUseCase CRUD de campañas.
type CampaignUseCase struct {
	campaigns repository.CampaignRepository
}

func NewCampaignUseCase(campaigns repository.CampaignRepository) *CampaignUseCase {
	return &CampaignUseCase{campaigns: campaigns}
}

// Create crea una campaña.
func (uc *CampaignUseCase) Create(ctx context.Context, in dto.CreateCampaignRequest) (*dto.CampaignResponse, error) {
	input, violations := validation.CreateCampaign(in)
	if violations != nil {
		return nil, &domain.ValidationError{Violations: violations}
	}

	c := &entity.Campaign{
		Name:         input.Name,
		Description:  input.Description,
		CampaignType: input.CampaignType,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		IsActive:     input.IsActive,
		CreatedAt:    time.Now(),
	}

	id, err := uc.campaigns.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("creando campaña: %w", err)
	}
	c.ID = id

	out := dto.FromCampaign(c)
	return &out, nil
}

// GetByID devuelve una campaña por id.
func (uc *CampaignUseCase) GetByID(ctx context.Context, id int64) (*dto.CampaignResponse, error) {
	c, err := uc.campaigns.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("consultando campaña %d: %w", id, err)
	}
	if c == nil {
		return nil, domain.NotFound("campaign", fmt.Sprintf("campaña %d no encontrada", id))
	}
	out := dto.FromCampaign(c)
	return &out, nil
}

// List devuelve campañas paginadas, filtrables por estado activo.
func (uc *CampaignUseCase) List(ctx context.Context, isActive *bool, page dto.PageRequest) (*dto.CampaignListResponse, error) {
	page.DefaultPage()

	items, err := uc.campaigns.List(ctx, isActive, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listando campañas: %w", err)
	}

	out := &dto.CampaignListResponse{
		Items: make([]dto.CampaignResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, c := range items {
		out.Items = append(out.Items, dto.FromCampaign(c))
	}
	return out, nil
}

// Update actualiza una campaña.
func (uc *CampaignUseCase) Update(ctx context.Context, id int64, in dto.UpdateCampaignRequest) (*dto.CampaignResponse, error) {
	if violations := validation.Struct(in); violations != nil {
		return nil, &domain.ValidationError{Violations: violations}
	}

	c, err := uc.campaigns.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("consultando campaña %d: %w", id, err)
	}
	if c == nil {
		return nil, domain.NotFound("campaign", fmt.Sprintf("campaña %d no encontrada", id))
	}

	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Description != nil {
		c.Description = in.Description
	}
	if in.CampaignType != nil {
		c.CampaignType = *in.CampaignType
	}
	if in.StartDate != nil && *in.StartDate != "" {
		t, ok := validation.ParseDate(*in.StartDate)
		if !ok {
			return nil, &domain.ValidationError{Violations: []domain.Violation{
				{Field: "start_date", Message: "debe ser una fecha válida"},
			}}
		}
		c.StartDate = &t
	}
	if in.EndDate != nil && *in.EndDate != "" {
		t, ok := validation.ParseDate(*in.EndDate)
		if !ok {
			return nil, &domain.ValidationError{Violations: []domain.Violation{
				{Field: "end_date", Message: "debe ser una fecha válida"},
			}}
		}
		c.EndDate = &t
	}
	if c.StartDate != nil && c.EndDate != nil && c.EndDate.Before(*c.StartDate) {
		return nil, &domain.ValidationError{Violations: []domain.Violation{
			{Field: "end_date", Message: "no puede ser anterior a start_date"},
		}}
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	now := time.Now()
	c.UpdatedAt = &now

	if err := uc.campaigns.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("actualizando campaña %d: %w", id, err)
	}

	out := dto.FromCampaign(c)
	return &out, nil
}
