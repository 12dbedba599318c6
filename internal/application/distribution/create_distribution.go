package distribution

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

// CreateDistributionUseCase registra la entrega de una cesta a una familia.
// El descuento de stock sigue la composición de la cesta en el momento de la
// entrega y es todo o nada: si algún producto no alcanza, no se descuenta nada.
type CreateDistributionUseCase struct {
	txRunner      TxRunner
	baskets       repository.FoodBasketRepository
	families      repository.FamilyRepository
	collaborators repository.CollaboratorRepository
	campaigns     repository.CampaignRepository
	logger        zerolog.Logger
}

func NewCreateDistributionUseCase(
	txRunner TxRunner,
	baskets repository.FoodBasketRepository,
	families repository.FamilyRepository,
	collaborators repository.CollaboratorRepository,
	campaigns repository.CampaignRepository,
	logger zerolog.Logger,
) *CreateDistributionUseCase {
	return &CreateDistributionUseCase{
		txRunner:      txRunner,
		baskets:       baskets,
		families:      families,
		collaborators: collaborators,
		campaigns:     campaigns,
		logger:        logger,
	}
}

// Execute valida la entrada, resuelve las referencias y registra la entrega
// descontando stock por cada item de la cesta. Los productos se releen con
// bloqueo de fila dentro de la transacción, en orden de product_id, de modo
// que dos entregas concurrentes no puedan dejar stock negativo.
func (uc *CreateDistributionUseCase) Execute(ctx context.Context, in dto.CreateDistributionRequest) (*dto.DistributionResponse, error) {
	input, violations := validation.CreateDistribution(in)
	if violations != nil {
		return nil, &domain.ValidationError{Violations: violations}
	}

	basket, err := uc.baskets.GetByID(ctx, input.FoodBasketID)
	if err != nil {
		return nil, fmt.Errorf("verificando cesta: %w", err)
	}
	if basket == nil {
		return nil, domain.NotFound("food_basket", fmt.Sprintf("cesta %d no encontrada", input.FoodBasketID))
	}

	collab, err := uc.collaborators.GetByID(ctx, input.CollaboratorID)
	if err != nil {
		return nil, fmt.Errorf("verificando colaborador: %w", err)
	}
	if collab == nil {
		return nil, domain.NotFound("collaborator", fmt.Sprintf("colaborador %d no encontrado", input.CollaboratorID))
	}

	family, err := uc.families.GetByID(ctx, input.FamilyID)
	if err != nil {
		return nil, fmt.Errorf("verificando familia: %w", err)
	}
	if family == nil {
		return nil, domain.NotFound("family", fmt.Sprintf("familia %d no encontrada", input.FamilyID))
	}

	if input.CampaignID != nil {
		campaign, err := uc.campaigns.GetByID(ctx, *input.CampaignID)
		if err != nil {
			return nil, fmt.Errorf("verificando campaña: %w", err)
		}
		if campaign == nil {
			return nil, domain.NotFound("campaign", fmt.Sprintf("campaña %d no encontrada", *input.CampaignID))
		}
	}

	var created *entity.FoodBasketDistribution
	var itemCount int
	err = uc.txRunner.RunDistribution(ctx, func(
		distributions repository.DistributionRepository,
		products repository.ProductRepository,
		baskets repository.FoodBasketRepository,
	) error {
		d := &entity.FoodBasketDistribution{
			FoodBasketID:   &basket.ID,
			CollaboratorID: input.CollaboratorID,
			FamilyID:       input.FamilyID,
			CampaignID:     input.CampaignID,
			Status:         input.Status,
			DeliveryDate:   input.DeliveryDate,
			Observations:   input.Observations,
			CreatedAt:      time.Now(),
		}
		id, err := distributions.Create(ctx, d)
		if err != nil {
			return fmt.Errorf("creando distribución: %w", err)
		}
		d.ID = id
		created = d

		// La composición se lee dentro de la transacción para que una
		// actualización concurrente de la cesta no deje la entrega
		// descontando una receta que ya no existe.
		items, err := baskets.ListItems(ctx, basket.ID)
		if err != nil {
			return fmt.Errorf("consultando composición de la cesta %d: %w", basket.ID, err)
		}
		itemCount = len(items)

		for _, item := range items {
			product, err := products.GetForUpdate(ctx, item.ProductID)
			if err != nil {
				return fmt.Errorf("bloqueando producto %d: %w", item.ProductID, err)
			}
			if product == nil {
				return domain.NotFound("product", fmt.Sprintf("producto %d no encontrado", item.ProductID))
			}
			if product.InStock < item.Quantity {
				return &domain.InsufficientStockError{ProductID: product.ID}
			}
			if err := products.UpdateStock(ctx, product.ID, product.InStock-item.Quantity); err != nil {
				return fmt.Errorf("actualizando stock del producto %d: %w", product.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info().
		Int64("distribution_id", created.ID).
		Int64("food_basket_id", basket.ID).
		Int64("family_id", input.FamilyID).
		Int("items", itemCount).
		Msg("cesta distribuida")

	out := dto.FromDistribution(created)
	return &out, nil
}
