package donation

import (
	"context"
	"fmt"

	"github.com/ong-esperanza/donaciones-api/internal/application/dto"
	"github.com/ong-esperanza/donaciones-api/internal/domain"
	"github.com/ong-esperanza/donaciones-api/internal/domain/entity"
)

// references entidades referenciadas por una donación, ya cargadas.
type references struct {
	Donor        *entity.Donor
	Collaborator *entity.Collaborator
	Campaign     *entity.Campaign
	Product      *entity.Product
}

// resolveReferences verifica la existencia de cada clave foránea en orden
// fijo: donante, colaborador, campaña (si viene) y producto (si viene).
// Devuelve el primer fallo que encuentre.
func (uc *CreateDonationUseCase) resolveReferences(ctx context.Context, in dto.CreateDonationRequest) (*references, error) {
	refs := &references{}

	donor, err := uc.donors.GetByID(ctx, in.DonorID)
	if err != nil {
		return nil, fmt.Errorf("verificando donante: %w", err)
	}
	if donor == nil {
		return nil, domain.NotFound("donor", fmt.Sprintf("donante %d no encontrado", in.DonorID))
	}
	refs.Donor = donor

	collab, err := uc.collaborators.GetByID(ctx, in.CollaboratorID)
	if err != nil {
		return nil, fmt.Errorf("verificando colaborador: %w", err)
	}
	if collab == nil {
		return nil, domain.NotFound("collaborator", fmt.Sprintf("colaborador %d no encontrado", in.CollaboratorID))
	}
	refs.Collaborator = collab

	if in.CampaignID != nil {
		campaign, err := uc.campaigns.GetByID(ctx, *in.CampaignID)
		if err != nil {
			return nil, fmt.Errorf("verificando campaña: %w", err)
		}
		if campaign == nil {
			return nil, domain.NotFound("campaign", fmt.Sprintf("campaña %d no encontrada", *in.CampaignID))
		}
		refs.Campaign = campaign
	}

	if in.ProductID != nil {
		product, err := uc.products.GetByID(ctx, *in.ProductID)
		if err != nil {
			return nil, fmt.Errorf("verificando producto: %w", err)
		}
		if product == nil {
			return nil, domain.NotFound("product", fmt.Sprintf("producto %d no encontrado", *in.ProductID))
		}
		refs.Product = product
	}

	return refs, nil
}
