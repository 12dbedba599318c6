package donation

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ong-esperanza/donaciones-api/internal/application/dto"
	"github.com/ong-esperanza/donaciones-api/internal/application/validation"
	"github.com/ong-esperanza/donaciones-api/internal/domain"
	"github.com/ong-esperanza/donaciones-api/internal/domain/entity"
	"github.com/ong-esperanza/donaciones-api/internal/domain/repository"
)

// CreateDonationUseCase registra donaciones. Para donaciones en especie con
// producto asociado el alta de la donación y el incremento de stock ocurren
// en la misma transacción.
type CreateDonationUseCase struct {
	txRunner      TxRunner
	donors        repository.DonorRepository
	collaborators repository.CollaboratorRepository
	campaigns     repository.CampaignRepository
	products      repository.ProductRepository
	logger        zerolog.Logger
}

func NewCreateDonationUseCase(
	txRunner TxRunner,
	donors repository.DonorRepository,
	collaborators repository.CollaboratorRepository,
	campaigns repository.CampaignRepository,
	products repository.ProductRepository,
	logger zerolog.Logger,
) *CreateDonationUseCase {
	return &CreateDonationUseCase{
		txRunner:      txRunner,
		donors:        donors,
		collaborators: collaborators,
		campaigns:     campaigns,
		products:      products,
		logger:        logger,
	}
}

// Execute valida la donación, resuelve sus referencias y la persiste.
// La validación y la resolución de referencias ocurren antes de abrir la
// transacción; dentro de ella el producto se relee con bloqueo de fila para
// que el incremento de stock no pise escrituras concurrentes.
func (uc *CreateDonationUseCase) Execute(ctx context.Context, in dto.CreateDonationRequest) (*dto.DonationResponse, error) {
	in, violations := validation.CreateDonation(in)
	if violations != nil {
		return nil, &domain.ValidationError{Violations: violations}
	}

	refs, err := uc.resolveReferences(ctx, in)
	if err != nil {
		return nil, err
	}

	qty := 0
	if in.Quantity != nil {
		qty = *in.Quantity
	}

	var (
		created        *entity.Donation
		updatedProduct *entity.Product
	)
	err = uc.txRunner.Run(ctx, func(donations repository.DonationRepository, products repository.ProductRepository) error {
		d := &entity.Donation{
			Type:           in.Type,
			Amount:         in.Amount,
			Quantity:       in.Quantity,
			Unit:           in.Unit,
			Observations:   in.Observations,
			DonorID:        in.DonorID,
			CollaboratorID: in.CollaboratorID,
			CampaignID:     in.CampaignID,
			ProductID:      in.ProductID,
			CreatedAt:      time.Now(),
		}
		id, err := donations.Create(ctx, d)
		if err != nil {
			return fmt.Errorf("creando donación: %w", err)
		}
		d.ID = id
		created = d

		if in.ProductID == nil || qty <= 0 {
			return nil
		}

		product, err := products.GetForUpdate(ctx, *in.ProductID)
		if err != nil {
			return fmt.Errorf("bloqueando producto %d: %w", *in.ProductID, err)
		}
		if product == nil {
			return domain.NotFound("product", fmt.Sprintf("producto %d no encontrado", *in.ProductID))
		}
		if err := products.UpdateStock(ctx, product.ID, product.InStock+qty); err != nil {
			return fmt.Errorf("actualizando stock del producto %d: %w", product.ID, err)
		}
		product.InStock += qty
		updatedProduct = product
		return nil
	})
	if err != nil {
		return nil, err
	}

	if updatedProduct != nil {
		refs.Product = updatedProduct
		uc.logger.Info().
			Int64("donation_id", created.ID).
			Int64("product_id", updatedProduct.ID).
			Int("quantity", qty).
			Int("in_stock", updatedProduct.InStock).
			Msg("stock incrementado por donación")
	}

	return uc.toResponse(created, refs), nil
}

func (uc *CreateDonationUseCase) toResponse(d *entity.Donation, refs *references) *dto.DonationResponse {
	out := &dto.DonationResponse{
		ID:           d.ID,
		Type:         d.Type,
		Amount:       d.Amount,
		Quantity:     d.Quantity,
		Unit:         d.Unit,
		Observations: d.Observations,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
		Donor:        dto.FromDonor(refs.Donor),
		Collaborator: dto.FromCollaborator(refs.Collaborator),
	}
	if refs.Campaign != nil {
		c := dto.FromCampaign(refs.Campaign)
		out.Campaign = &c
	}
	if refs.Product != nil {
		p := dto.FromProduct(refs.Product)
		out.Product = &p
	}
	return out
}
