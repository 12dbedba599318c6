package distribution_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ong-esperanza/donaciones-api/internal/application/distribution"
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
	byID  map[int64]*entity.FoodBasket
	items map[int64][]*entity.FoodBasketItem
}

func (f *fakeBaskets) GetByID(_ context.Context, id int64) (*entity.FoodBasket, error) {
	return f.byID[id], nil
}

func (f *fakeBaskets) ListItems(_ context.Context, basketID int64) ([]*entity.FoodBasketItem, error) {
	return f.items[basketID], nil
}

type fakeFamilies struct {
	repository.FamilyRepository
	byID map[int64]*entity.Family
}

func (f *fakeFamilies) GetByID(_ context.Context, id int64) (*entity.Family, error) {
	return f.byID[id], nil
}

type fakeCollaborators struct {
	repository.CollaboratorRepository
	byID map[int64]*entity.Collaborator
}

func (f *fakeCollaborators) GetByID(_ context.Context, id int64) (*entity.Collaborator, error) {
	return f.byID[id], nil
}

type fakeCampaigns struct {
	repository.CampaignRepository
	byID map[int64]*entity.Campaign
}

func (f *fakeCampaigns) GetByID(_ context.Context, id int64) (*entity.Campaign, error) {
	return f.byID[id], nil
}

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

type fakeDistributions struct {
	repository.DistributionRepository
	created []*entity.FoodBasketDistribution
}

func (f *fakeDistributions) Create(_ context.Context, d *entity.FoodBasketDistribution) (int64, error) {
	f.created = append(f.created, d)
	return int64(len(f.created)), nil
}

// fakeTxRunner ejecuta fn y, si falla, restaura el stock y descarta las
// distribuciones creadas, como haría el rollback real. beforeFn, si está
// definido, corre justo antes de fn, simulando una escritura concurrente
// que alcanzó a comprometerse antes de abrir esta transacción.
type fakeTxRunner struct {
	distributions *fakeDistributions
	products      *fakeProducts
	baskets       *fakeBaskets
	beforeFn      func()
}

func (f *fakeTxRunner) RunDistribution(ctx context.Context, fn func(repository.DistributionRepository, repository.ProductRepository, repository.FoodBasketRepository) error) error {
	if f.beforeFn != nil {
		f.beforeFn()
	}
	stockBefore := make(map[int64]int, len(f.products.byID))
	for id, p := range f.products.byID {
		stockBefore[id] = p.InStock
	}
	createdBefore := len(f.distributions.created)

	if err := fn(f.distributions, f.products, f.baskets); err != nil {
		for id, s := range stockBefore {
			f.products.byID[id].InStock = s
		}
		f.distributions.created = f.distributions.created[:createdBefore]
		return err
	}
	return nil
}

type fixture struct {
	uc            *distribution.CreateDistributionUseCase
	distributions *fakeDistributions
	products      *fakeProducts
	baskets       *fakeBaskets
	runner        *fakeTxRunner
}

// newFixture arma una cesta de dos productos: 3 kg de arroz y 2 l de aceite.
func newFixture(riceStock, oilStock int) *fixture {
	baskets := &fakeBaskets{
		byID: map[int64]*entity.FoodBasket{
			1: {ID: 1, Name: "Cesta básica", IsActive: true},
		},
		items: map[int64][]*entity.FoodBasketItem{
			1: {
				{FoodBasketID: 1, ProductID: 10, Quantity: 3},
				{FoodBasketID: 1, ProductID: 20, Quantity: 2},
			},
		},
	}
	products := &fakeProducts{byID: map[int64]*entity.Product{
		10: {ID: 10, Name: "Arroz", Unit: "kg", InStock: riceStock, IsActive: true},
		20: {ID: 20, Name: "Aceite", Unit: "l", InStock: oilStock, IsActive: true},
	}}
	families := &fakeFamilies{byID: map[int64]*entity.Family{
		2: {ID: 2, ResponsibleName: "Ana Pereira", ResponsibleCPF: "52998224725", IsActive: true},
	}}
	collaborators := &fakeCollaborators{byID: map[int64]*entity.Collaborator{
		3: {ID: 3, Name: "João Lima", Registration: "COL-003", IsActive: true},
	}}
	campaigns := &fakeCampaigns{byID: map[int64]*entity.Campaign{}}
	distributions := &fakeDistributions{}
	runner := &fakeTxRunner{distributions: distributions, products: products, baskets: baskets}

	return &fixture{
		uc: distribution.NewCreateDistributionUseCase(
			runner, baskets, families, collaborators, campaigns, zerolog.Nop(),
		),
		distributions: distributions,
		products:      products,
		baskets:       baskets,
		runner:        runner,
	}
}

func validRequest() dto.CreateDistributionRequest {
	return dto.CreateDistributionRequest{
		FoodBasketID:   1,
		CollaboratorID: 3,
		FamilyID:       2,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateDistribution_DescuentaStockPorItem(t *testing.T) {
	f := newFixture(10, 5)

	out, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 7, f.products.byID[10].InStock, "arroz: 10 - 3")
	assert.Equal(t, 3, f.products.byID[20].InStock, "aceite: 5 - 2")
	require.Len(t, f.distributions.created, 1)
	assert.Equal(t, entity.DistributionStatusPending, out.Status, "status por defecto pending")
	require.NotNil(t, out.FoodBasketID)
	assert.Equal(t, int64(1), *out.FoodBasketID)
}

// Propiedad todo o nada: si el segundo producto no alcanza, el primero
// tampoco se descuenta y la distribución no queda registrada.
func TestCreateDistribution_StockInsuficiente_NoDescuentaNada(t *testing.T) {
	f := newFixture(10, 1) // aceite insuficiente (necesita 2)

	_, err := f.uc.Execute(context.Background(), validRequest())

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, int64(20), stockErr.ProductID, "el error identifica el producto ofensor")

	assert.Equal(t, 10, f.products.byID[10].InStock, "el arroz no se descuenta")
	assert.Equal(t, 1, f.products.byID[20].InStock, "el aceite no se descuenta")
	assert.Empty(t, f.distributions.created, "la distribución se revierte completa")
}

func TestCreateDistribution_StockExacto_QuedaEnCero(t *testing.T) {
	f := newFixture(3, 2)

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err, "consumir exactamente el stock disponible es válido")

	assert.Equal(t, 0, f.products.byID[10].InStock)
	assert.Equal(t, 0, f.products.byID[20].InStock)
}

func TestCreateDistribution_CestaInexistente_404(t *testing.T) {
	f := newFixture(10, 5)

	in := validRequest()
	in.FoodBasketID = 99
	_, err := f.uc.Execute(context.Background(), in)

	var nferr *domain.EntityNotFoundError
	require.ErrorAs(t, err, &nferr)
	assert.Equal(t, "food_basket", nferr.Entity)
	assert.Equal(t, 10, f.products.byID[10].InStock, "sin cesta no hay descuento")
}

// Las referencias se verifican en orden cesta, colaborador, familia: cuando
// faltan varias, el error reporta la primera de la cadena.
func TestCreateDistribution_OrdenDeReferencias_ColaboradorGana(t *testing.T) {
	f := newFixture(10, 5)

	in := validRequest()
	in.CollaboratorID = 99
	in.FamilyID = 98
	_, err := f.uc.Execute(context.Background(), in)

	var nferr *domain.EntityNotFoundError
	require.ErrorAs(t, err, &nferr)
	assert.Equal(t, "collaborator", nferr.Entity,
		"con colaborador y familia inexistentes se reporta el colaborador")
}

// La composición se lee dentro de la transacción: si la cesta cambia entre
// la verificación de existencia y la apertura de la transacción, la entrega
// descuenta la receta vigente, no la anterior.
func TestCreateDistribution_ComposicionLeidaEnTransaccion(t *testing.T) {
	f := newFixture(10, 5)

	f.runner.beforeFn = func() {
		f.baskets.items[1] = []*entity.FoodBasketItem{
			{FoodBasketID: 1, ProductID: 10, Quantity: 1},
		}
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 9, f.products.byID[10].InStock, "descuenta la receta nueva: 10 - 1")
	assert.Equal(t, 5, f.products.byID[20].InStock, "el aceite ya no forma parte de la cesta")
}

func TestCreateDistribution_FamiliaInexistente_404(t *testing.T) {
	f := newFixture(10, 5)

	in := validRequest()
	in.FamilyID = 99
	_, err := f.uc.Execute(context.Background(), in)

	var nferr *domain.EntityNotFoundError
	require.ErrorAs(t, err, &nferr)
	assert.Equal(t, "family", nferr.Entity)
}

func TestCreateDistribution_StatusInvalido_Validacion(t *testing.T) {
	f := newFixture(10, 5)

	status := "shipped"
	in := validRequest()
	in.Status = &status
	_, err := f.uc.Execute(context.Background(), in)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, f.distributions.created)
}

func TestCreateDistribution_FechaEntregaInvalida_Validacion(t *testing.T) {
	f := newFixture(10, 5)

	bad := "no-es-fecha"
	in := validRequest()
	in.DeliveryDate = &bad
	_, err := f.uc.Execute(context.Background(), in)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
}
