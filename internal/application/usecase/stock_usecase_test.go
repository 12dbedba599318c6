package usecase_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ong-esperanza/donaciones-api/internal/application/dto"
	"github.com/ong-esperanza/donaciones-api/internal/application/usecase"
	"github.com/ong-esperanza/donaciones-api/internal/domain"
	"github.com/ong-esperanza/donaciones-api/internal/domain/entity"
	"github.com/ong-esperanza/donaciones-api/internal/domain/repository"
)

type fakeProducts struct {
	repository.ProductRepository
	byID map[int64]*entity.Product
}

func (f *fakeProducts) GetForUpdate(_ context.Context, id int64) (*entity.Product, error) {
	return f.byID[id], nil
}

func (f *fakeProducts) UpdateStock(_ context.Context, id int64, inStock int) error {
	f.byID[id].InStock = inStock
	return nil
}

type fakeStockRunner struct {
	products *fakeProducts
}

func (f *fakeStockRunner) RunProducts(ctx context.Context, fn func(repository.ProductRepository) error) error {
	return fn(f.products)
}

func newStockUseCase(inStock int) (*usecase.StockUseCase, *fakeProducts) {
	products := &fakeProducts{byID: map[int64]*entity.Product{
		1: {ID: 1, Name: "Arroz", Unit: "kg", InStock: inStock, IsActive: true},
	}}
	return usecase.NewStockUseCase(&fakeStockRunner{products: products}, zerolog.Nop()), products
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestStockAdjust_EntradaPositiva(t *testing.T) {
	uc, products := newStockUseCase(10)

	out, err := uc.Adjust(context.Background(), 1, dto.AdjustStockRequest{Quantity: 5})
	require.NoError(t, err)

	assert.Equal(t, 15, products.byID[1].InStock)
	assert.Equal(t, 15, out.Product.InStock, "la respuesta refleja el stock nuevo")
	assert.Equal(t, "stock actualizado correctamente", out.Message)
}

func TestStockAdjust_SalidaNegativa(t *testing.T) {
	uc, products := newStockUseCase(10)

	_, err := uc.Adjust(context.Background(), 1, dto.AdjustStockRequest{Quantity: -4})
	require.NoError(t, err)

	assert.Equal(t, 6, products.byID[1].InStock)
}

func TestStockAdjust_SalidaExacta_QuedaEnCero(t *testing.T) {
	uc, products := newStockUseCase(10)

	_, err := uc.Adjust(context.Background(), 1, dto.AdjustStockRequest{Quantity: -10})
	require.NoError(t, err, "dejar el stock exactamente en cero es válido")

	assert.Equal(t, 0, products.byID[1].InStock)
}

func TestStockAdjust_SalidaMayorQueStock_Conflicto(t *testing.T) {
	uc, products := newStockUseCase(10)

	_, err := uc.Adjust(context.Background(), 1, dto.AdjustStockRequest{Quantity: -11})

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, int64(1), stockErr.ProductID)
	assert.Equal(t, 10, products.byID[1].InStock, "el stock no se toca")
}

func TestStockAdjust_ProductoInexistente_404(t *testing.T) {
	uc, _ := newStockUseCase(10)

	_, err := uc.Adjust(context.Background(), 99, dto.AdjustStockRequest{Quantity: 1})

	var nferr *domain.EntityNotFoundError
	require.ErrorAs(t, err, &nferr)
	assert.Equal(t, "product", nferr.Entity)
}

// Quantity cero no es un ajuste: el validador lo rechaza antes de abrir la
// transacción.
func TestStockAdjust_CantidadCero_Validacion(t *testing.T) {
	uc, products := newStockUseCase(10)

	_, err := uc.Adjust(context.Background(), 1, dto.AdjustStockRequest{Quantity: 0})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 10, products.byID[1].InStock)
}
