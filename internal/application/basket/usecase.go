package basket

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

// FoodBasketUseCase operaciones sobre cestas básicas. La composición es un
// valor que se reemplaza entero: actualizarla borra los items anteriores e
// inserta los nuevos dentro de una transacción.
type FoodBasketUseCase struct {
	txRunner TxRunner
	baskets  repository.FoodBasketRepository
	products repository.ProductRepository
	logger   zerolog.Logger
}

func NewFoodBasketUseCase(
	txRunner TxRunner,
	baskets repository.FoodBasketRepository,
	products repository.ProductRepository,
	logger zerolog.Logger,
) *FoodBasketUseCase {
	return &FoodBasketUseCase{
		txRunner: txRunner,
		baskets:  baskets,
		products: products,
		logger:   logger,
	}
}

// Create crea una cesta con su composición inicial.
func (uc *FoodBasketUseCase) Create(ctx context.Context, in dto.CreateFoodBasketRequest) (*dto.FoodBasketResponse, error) {
	in, violations := validation.CreateFoodBasket(in)
	if violations != nil {
		return nil, &domain.ValidationError{Violations: violations}
	}
	if err := uc.checkProducts(ctx, in.Products); err != nil {
		return nil, err
	}

	b := &entity.FoodBasket{
		Name:        in.Name,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
	if in.IsActive != nil {
		b.IsActive = *in.IsActive
	}

	err := uc.txRunner.RunBasket(ctx, func(baskets repository.FoodBasketRepository) error {
		id, err := baskets.Create(ctx, b)
		if err != nil {
			return fmt.Errorf("creando cesta: %w", err)
		}
		b.ID = id
		for _, item := range in.Products {
			if err := baskets.InsertItem(ctx, &entity.FoodBasketItem{
				FoodBasketID: id,
				ProductID:    item.ProductID,
				Quantity:     item.Quantity,
			}); err != nil {
				return fmt.Errorf("insertando item de la cesta %d: %w", id, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info().Int64("food_basket_id", b.ID).Int("items", len(in.Products)).Msg("cesta creada")
	return uc.toResponse(ctx, b)
}

// GetByID devuelve una cesta con su composición.
func (uc *FoodBasketUseCase) GetByID(ctx context.Context, id int64) (*dto.FoodBasketResponse, error) {
	b, err := uc.baskets.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("consultando cesta %d: %w", id, err)
	}
	if b == nil {
		return nil, domain.NotFound("food_basket", fmt.Sprintf("cesta %d no encontrada", id))
	}
	return uc.toResponse(ctx, b)
}

// List devuelve cestas paginadas sin composición.
func (uc *FoodBasketUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.FoodBasketListResponse, error) {
	page.DefaultPage()

	items, err := uc.baskets.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listando cestas: %w", err)
	}

	out := &dto.FoodBasketListResponse{
		Items: make([]dto.FoodBasketResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, b := range items {
		out.Items = append(out.Items, dto.FoodBasketResponse{
			ID:          b.ID,
			Name:        b.Name,
			Description: b.Description,
			IsActive:    b.IsActive,
			CreatedAt:   b.CreatedAt,
			UpdatedAt:   b.UpdatedAt,
		})
	}
	return out, nil
}

// Update actualiza los escalares de la cesta y, solo si products viene con
// elementos, reemplaza la composición completa. Products vacío u omitido
// deja los items como están.
func (uc *FoodBasketUseCase) Update(ctx context.Context, id int64, in dto.UpdateFoodBasketRequest) (*dto.FoodBasketResponse, error) {
	in, violations := validation.UpdateFoodBasket(in)
	if violations != nil {
		return nil, &domain.ValidationError{Violations: violations}
	}

	b, err := uc.baskets.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("consultando cesta %d: %w", id, err)
	}
	if b == nil {
		return nil, domain.NotFound("food_basket", fmt.Sprintf("cesta %d no encontrada", id))
	}

	if len(in.Products) > 0 {
		if err := uc.checkProducts(ctx, in.Products); err != nil {
			return nil, err
		}
	}

	if in.Name != nil {
		b.Name = *in.Name
	}
	if in.Description != nil {
		b.Description = *in.Description
	}
	if in.IsActive != nil {
		b.IsActive = *in.IsActive
	}
	now := time.Now()
	b.UpdatedAt = &now

	err = uc.txRunner.RunBasket(ctx, func(baskets repository.FoodBasketRepository) error {
		if err := baskets.UpdateScalars(ctx, b); err != nil {
			return fmt.Errorf("actualizando cesta %d: %w", id, err)
		}
		if len(in.Products) == 0 {
			return nil
		}
		if err := baskets.DeleteItems(ctx, id); err != nil {
			return fmt.Errorf("borrando composición de la cesta %d: %w", id, err)
		}
		for _, item := range in.Products {
			if err := baskets.InsertItem(ctx, &entity.FoodBasketItem{
				FoodBasketID: id,
				ProductID:    item.ProductID,
				Quantity:     item.Quantity,
			}); err != nil {
				return fmt.Errorf("insertando item de la cesta %d: %w", id, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.toResponse(ctx, b)
}

// checkProducts verifica que todo product_id de la composición exista.
func (uc *FoodBasketUseCase) checkProducts(ctx context.Context, items []dto.BasketItemInput) error {
	for _, item := range items {
		p, err := uc.products.GetByID(ctx, item.ProductID)
		if err != nil {
			return fmt.Errorf("verificando producto %d: %w", item.ProductID, err)
		}
		if p == nil {
			return domain.NotFound("product", fmt.Sprintf("producto %d no encontrado", item.ProductID))
		}
	}
	return nil
}

func (uc *FoodBasketUseCase) toResponse(ctx context.Context, b *entity.FoodBasket) (*dto.FoodBasketResponse, error) {
	items, err := uc.baskets.ListItems(ctx, b.ID)
	if err != nil {
		return nil, fmt.Errorf("consultando composición de la cesta %d: %w", b.ID, err)
	}

	out := &dto.FoodBasketResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		IsActive:    b.IsActive,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
		Products:    make([]dto.BasketItemResponse, 0, len(items)),
	}
	for _, item := range items {
		row := dto.BasketItemResponse{ProductID: item.ProductID, Quantity: item.Quantity}
		p, err := uc.products.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("consultando producto %d: %w", item.ProductID, err)
		}
		if p != nil {
			row.ProductName = p.Name
		}
		out.Products = append(out.Products, row)
	}
	return out, nil
}
