package basket_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ong-esperanza/donaciones-api/internal/application/basket"
	"github.com/ong-esperanza/donaciones-api/internal/application/dto"
	"github.com/ong-esperanza/donaciones-api/internal/domain"
	"github.com/ong-esperanza/donaciones-api/internal/domain/entity"
	"github.com/ong-esperanza/donaciones-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeBaskets struct {
	repository.FoodBasketRepository
	byID   map[int64]*entity.FoodBasket
	items  map[int64][]*entity.FoodBasketItem
	nextID int64
}

func newFakeBaskets() *fakeBaskets {
	return &fakeBaskets{
		byID:  map[int64]*entity.FoodBasket{},
		items: map[int64][]*entity.FoodBasketItem{},
	}
}

func (f *fakeBaskets) Create(_ context.Context, b *entity.FoodBasket) (int64, error) {
	f.nextID++
	copy := *b
	copy.ID = f.nextID
	f.byID[f.nextID] = &copy
	return f.nextID, nil
}

func (f *fakeBaskets) GetByID(_ context.Context, id int64) (*entity.FoodBasket, error) {
	return f.byID[id], nil
}

func (f *fakeBaskets) UpdateScalars(_ context.Context, b *entity.FoodBasket) error {
	copy := *b
	f.byID[b.ID] = &copy
	return nil
}

func (f *fakeBaskets) ListItems(_ context.Context, basketID int64) ([]*entity.FoodBasketItem, error) {
	return f.items[basketID], nil
}

func (f *fakeBaskets) DeleteItems(_ context.Context, basketID int64) error {
	delete(f.items, basketID)
	return nil
}

func (f *fakeBaskets) InsertItem(_ context.Context, item *entity.FoodBasketItem) error {
	copy := *item
	f.items[item.FoodBasketID] = append(f.items[item.FoodBasketID], &copy)
	return nil
}

type fakeProducts struct {
	repository.ProductRepository
	byID map[int64]*entity.Product
	err  error
}

func (f *fakeProducts) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

type fakeTxRunner struct {
	baskets *fakeBaskets
}

func (f *fakeTxRunner) RunBasket(ctx context.Context, fn func(repository.FoodBasketRepository) error) error {
	return fn(f.baskets)
}

func newUseCase() (*basket.FoodBasketUseCase, *fakeBaskets) {
	baskets := newFakeBaskets()
	products := &fakeProducts{byID: map[int64]*entity.Product{
		10: {ID: 10, Name: "Arroz", Unit: "kg", IsActive: true},
		20: {ID: 20, Name: "Frijoles", Unit: "kg", IsActive: true},
	}}
	uc := basket.NewFoodBasketUseCase(&fakeTxRunner{baskets: baskets}, baskets, products, zerolog.Nop())
	return uc, baskets
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestFoodBasket_CreateConComposicion(t *testing.T) {
	uc, baskets := newUseCase()

	out, err := uc.Create(context.Background(), dto.CreateFoodBasketRequest{
		Name: "Cesta familiar",
		Products: []dto.BasketItemInput{
			{ProductID: 10, Quantity: 3},
			{ProductID: 20, Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.True(t, out.IsActive, "activa por defecto")
	require.Len(t, baskets.items[out.ID], 2)
	require.Len(t, out.Products, 2)
	assert.Equal(t, "Arroz", out.Products[0].ProductName,
		"la respuesta incluye el nombre del producto")
}

func TestFoodBasket_CreateProductoInexistente_404(t *testing.T) {
	uc, baskets := newUseCase()

	_, err := uc.Create(context.Background(), dto.CreateFoodBasketRequest{
		Name:     "Cesta rota",
		Products: []dto.BasketItemInput{{ProductID: 99, Quantity: 1}},
	})

	var nferr *domain.EntityNotFoundError
	require.ErrorAs(t, err, &nferr)
	assert.Equal(t, "product", nferr.Entity)
	assert.Empty(t, baskets.byID, "no se crea nada si un producto no existe")
}

func TestFoodBasket_CreateSinNombre_Validacion(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Create(context.Background(), dto.CreateFoodBasketRequest{})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
}

// Products vacío u omitido en Update deja la composición como está: es una
// actualización parcial deliberada, no "vaciar la cesta".
func TestFoodBasket_UpdateSinProducts_ComposicionIntacta(t *testing.T) {
	uc, baskets := newUseCase()

	created, err := uc.Create(context.Background(), dto.CreateFoodBasketRequest{
		Name:     "Cesta familiar",
		Products: []dto.BasketItemInput{{ProductID: 10, Quantity: 3}},
	})
	require.NoError(t, err)

	newName := "Cesta familiar grande"
	out, err := uc.Update(context.Background(), created.ID, dto.UpdateFoodBasketRequest{
		Name: &newName,
	})
	require.NoError(t, err)

	assert.Equal(t, newName, out.Name)
	require.Len(t, baskets.items[created.ID], 1, "la composición no se toca")
	assert.Equal(t, int64(10), baskets.items[created.ID][0].ProductID)
}

func TestFoodBasket_UpdateConProducts_ReemplazaComposicion(t *testing.T) {
	uc, baskets := newUseCase()

	created, err := uc.Create(context.Background(), dto.CreateFoodBasketRequest{
		Name:     "Cesta familiar",
		Products: []dto.BasketItemInput{{ProductID: 10, Quantity: 3}},
	})
	require.NoError(t, err)

	out, err := uc.Update(context.Background(), created.ID, dto.UpdateFoodBasketRequest{
		Products: []dto.BasketItemInput{{ProductID: 20, Quantity: 5}},
	})
	require.NoError(t, err)

	require.Len(t, baskets.items[created.ID], 1, "la composición anterior desaparece entera")
	assert.Equal(t, int64(20), baskets.items[created.ID][0].ProductID)
	assert.Equal(t, 5, baskets.items[created.ID][0].Quantity)
	require.Len(t, out.Products, 1)
	assert.Equal(t, "Frijoles", out.Products[0].ProductName)
}

func TestFoodBasket_UpdateCestaInexistente_404(t *testing.T) {
	uc, _ := newUseCase()

	name := "Cesta fantasma"
	_, err := uc.Update(context.Background(), 99, dto.UpdateFoodBasketRequest{Name: &name})

	var nferr *domain.EntityNotFoundError
	require.ErrorAs(t, err, &nferr)
	assert.Equal(t, "food_basket", nferr.Entity)
}

func TestFoodBasket_GetByIDInexistente_404(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.GetByID(context.Background(), 42)

	var nferr *domain.EntityNotFoundError
	require.ErrorAs(t, err, &nferr)
}

// Un fallo de persistencia al resolver el nombre de un producto se propaga,
// no se degrada silenciosamente a una respuesta sin nombre.
func TestFoodBasket_GetByID_FalloConsultandoProducto_Propaga(t *testing.T) {
	baskets := newFakeBaskets()
	products := &fakeProducts{byID: map[int64]*entity.Product{
		10: {ID: 10, Name: "Arroz", Unit: "kg", IsActive: true},
	}}
	uc := basket.NewFoodBasketUseCase(&fakeTxRunner{baskets: baskets}, baskets, products, zerolog.Nop())

	created, err := uc.Create(context.Background(), dto.CreateFoodBasketRequest{
		Name:     "Cesta familiar",
		Products: []dto.BasketItemInput{{ProductID: 10, Quantity: 3}},
	})
	require.NoError(t, err)

	products.err = errors.New("conexión perdida")
	_, err = uc.GetByID(context.Background(), created.ID)

	require.Error(t, err)
	assert.ErrorContains(t, err, "consultando producto 10")
}
