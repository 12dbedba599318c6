package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ong-esperanza/donaciones-api/internal/application/dto"
	"github.com/ong-esperanza/donaciones-api/internal/application/validation"
	"github.com/ong-esperanza/donaciones-api/internal/domain"
	"github.com/ong-esperanza/donaciones-api/internal/domain/entity"
	"github.com/ong-esperanza/donaciones-api/internal/domain/repository"
)

// StockTxRunner ejecuta fn dentro de una transacción con un repositorio de
// productos ligado a ella.
type StockTxRunner interface {
	RunProducts(ctx context.Context, fn func(products repository.ProductRepository) error) error
}

// StockUseCase ajuste manual de stock, aditivo: cantidades positivas entran,
// negativas salen. Nunca deja stock negativo.
type StockUseCase struct {
	txRunner StockTxRunner
	logger   zerolog.Logger
}

func NewStockUseCase(txRunner StockTxRunner, logger zerolog.Logger) *StockUseCase {
	return &StockUseCase{txRunner: txRunner, logger: logger}
}

// Adjust aplica un delta al stock del producto. La lectura y la escritura
// ocurren bajo bloqueo de fila para que dos ajustes concurrentes no se pisen.
func (uc *StockUseCase) Adjust(ctx context.Context, productID int64, in dto.AdjustStockRequest) (*dto.AdjustStockResponse, error) {
	if violations := validation.Struct(in); violations != nil {
		return nil, &domain.ValidationError{Violations: violations}
	}

	var updated *entity.Product
	err := uc.txRunner.RunProducts(ctx, func(products repository.ProductRepository) error {
		p, err := products.GetForUpdate(ctx, productID)
		if err != nil {
			return fmt.Errorf("bloqueando producto %d: %w", productID, err)
		}
		if p == nil {
			return domain.NotFound("product", fmt.Sprintf("producto %d no encontrado", productID))
		}
		next := p.InStock + in.Quantity
		if next < 0 {
			return &domain.InsufficientStockError{ProductID: p.ID}
		}
		if err := products.UpdateStock(ctx, p.ID, next); err != nil {
			return fmt.Errorf("actualizando stock del producto %d: %w", p.ID, err)
		}
		p.InStock = next
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info().
		Int64("product_id", updated.ID).
		Int("delta", in.Quantity).
		Int("in_stock", updated.InStock).
		Msg("stock ajustado")

	return &dto.AdjustStockResponse{
		Message: "stock actualizado correctamente",
		Product: dto.FromProduct(updated),
	}, nil
}
