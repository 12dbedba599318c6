package donation

import (
	"context"
	"fmt"

	"github.com/ong-esperanza/donaciones-api/internal/application/dto"
	"github.com/ong-esperanza/donaciones-api/internal/domain"
	"github.com/ong-esperanza/donaciones-api/internal/domain/repository"
)

// QueryDonationsUseCase consultas de donaciones: detalle con referencias
// anidadas y listado plano paginado.
type QueryDonationsUseCase struct {
	donations     repository.DonationRepository
	donors        repository.DonorRepository
	collaborators repository.CollaboratorRepository
	campaigns     repository.CampaignRepository
	products      repository.ProductRepository
}

func NewQueryDonationsUseCase(
	donations repository.DonationRepository,
	donors repository.DonorRepository,
	collaborators repository.CollaboratorRepository,
	campaigns repository.CampaignRepository,
	products repository.ProductRepository,
) *QueryDonationsUseCase {
	return &QueryDonationsUseCase{
		donations:     donations,
		donors:        donors,
		collaborators: collaborators,
		campaigns:     campaigns,
		products:      products,
	}
}

// GetByID devuelve una donación con donante, colaborador y, si aplican,
// campaña y producto anidados.
func (uc *QueryDonationsUseCase) GetByID(ctx context.Context, id int64) (*dto.DonationResponse, error) {
	d, err := uc.donations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("consultando donación %d: %w", id, err)
	}
	if d == nil {
		return nil, domain.NotFound("donation", fmt.Sprintf("donación %d no encontrada", id))
	}

	out := &dto.DonationResponse{
		ID:           d.ID,
		Type:         d.Type,
		Amount:       d.Amount,
		Quantity:     d.Quantity,
		Unit:         d.Unit,
		Observations: d.Observations,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}

	donor, err := uc.donors.GetByID(ctx, d.DonorID)
	if err != nil {
		return nil, fmt.Errorf("consultando donante %d: %w", d.DonorID, err)
	}
	if donor != nil {
		out.Donor = dto.FromDonor(donor)
	}
	collab, err := uc.collaborators.GetByID(ctx, d.CollaboratorID)
	if err != nil {
		return nil, fmt.Errorf("consultando colaborador %d: %w", d.CollaboratorID, err)
	}
	if collab != nil {
		out.Collaborator = dto.FromCollaborator(collab)
	}
	if d.CampaignID != nil {
		campaign, err := uc.campaigns.GetByID(ctx, *d.CampaignID)
		if err != nil {
			return nil, fmt.Errorf("consultando campaña %d: %w", *d.CampaignID, err)
		}
		if campaign != nil {
			c := dto.FromCampaign(campaign)
			out.Campaign = &c
		}
	}
	if d.ProductID != nil {
		product, err := uc.products.GetByID(ctx, *d.ProductID)
		if err != nil {
			return nil, fmt.Errorf("consultando producto %d: %w", *d.ProductID, err)
		}
		if product != nil {
			p := dto.FromProduct(product)
			out.Product = &p
		}
	}
	return out, nil
}

// List devuelve donaciones filtradas y paginadas como filas planas.
func (uc *QueryDonationsUseCase) List(ctx context.Context, filter repository.DonationFilter) (*dto.DonationListResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	items, err := uc.donations.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listando donaciones: %w", err)
	}

	out := &dto.DonationListResponse{
		Items: make([]dto.DonationItem, 0, len(items)),
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}
	for _, d := range items {
		out.Items = append(out.Items, dto.FromDonationItem(d))
	}
	return out, nil
}
