package donation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ong-esperanza/donaciones-api/internal/application/donation"
	"github.com/ong-esperanza/donaciones-api/internal/application/dto"
	"github.com/ong-esperanza/donaciones-api/internal/domain"
	"github.com/ong-esperanza/donaciones-api/internal/domain/entity"
	"github.com/ong-esperanza/donaciones-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// Cada fake embebe la interfaz del puerto: solo se implementan los métodos que
// el flujo bajo prueba invoca; cualquier otro panic-ea y delata el uso no
// esperado.
// ──────────────────────────────────────────────────────────────────────────────

type fakeDonors struct {
	repository.DonorRepository
	byID map[int64]*entity.Donor
}

func (f *fakeDonors) GetByID(_ context.Context, id int64) (*entity.Donor, error) {
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
	byID        map[int64]*entity.Product
	stockErr    error
	updateCalls int
}

func (f *fakeProducts) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	return f.byID[id], nil
}

func (f *fakeProducts) GetForUpdate(_ context.Context, id int64) (*entity.Product, error) {
	if f.byID[id] == nil {
		return nil, nil
	}
	p := *f.byID[id]
	return &p, nil
}

func (f *fakeProducts) UpdateStock(_ context.Context, id int64, inStock int) error {
	if f.stockErr != nil {
		return f.stockErr
	}
	f.updateCalls++
	f.byID[id].InStock = inStock
	return nil
}

type fakeDonations struct {
	repository.DonationRepository
	created []*entity.Donation
}

func (f *fakeDonations) Create(_ context.Context, d *entity.Donation) (int64, error) {
	f.created = append(f.created, d)
	return int64(len(f.created)), nil
}

// fakeTxRunner ejecuta fn directamente y emula el rollback: si fn falla, el
// stock de los productos y las donaciones creadas vuelven al estado previo.
type fakeTxRunner struct {
	donations *fakeDonations
	products  *fakeProducts
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(repository.DonationRepository, repository.ProductRepository) error) error {
	stockBefore := make(map[int64]int, len(f.products.byID))
	for id, p := range f.products.byID {
		stockBefore[id] = p.InStock
	}
	createdBefore := len(f.donations.created)

	if err := fn(f.donations, f.products); err != nil {
		for id, s := range stockBefore {
			f.products.byID[id].InStock = s
		}
		f.donations.created = f.donations.created[:createdBefore]
		return err
	}
	return nil
}

type fixture struct {
	uc        *donation.CreateDonationUseCase
	donations *fakeDonations
	products  *fakeProducts
}

func newFixture() *fixture {
	donors := &fakeDonors{byID: map[int64]*entity.Donor{
		1: {ID: 1, Name: "María Souza", Email: "maria@example.com", Type: entity.DonorTypePersonaFisica, IsActive: true},
	}}
	collaborators := &fakeCollaborators{byID: map[int64]*entity.Collaborator{
		2: {ID: 2, Name: "João Lima", Registration: "COL-002", Email: "joao@ong.org", IsActive: true},
	}}
	campaigns := &fakeCampaigns{byID: map[int64]*entity.Campaign{
		3: {ID: 3, Name: "Navidad Solidaria", CampaignType: "general", IsActive: true},
	}}
	products := &fakeProducts{byID: map[int64]*entity.Product{
		4: {ID: 4, Name: "Arroz", Unit: "kg", InStock: 10, MinimumStock: 5, IsActive: true},
	}}
	donations := &fakeDonations{}
	runner := &fakeTxRunner{donations: donations, products: products}

	return &fixture{
		uc: donation.NewCreateDonationUseCase(
			runner, donors, collaborators, campaigns, products, zerolog.Nop(),
		),
		donations: donations,
		products:  products,
	}
}

func ptr[T any](v T) *T { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateDonation_AlimentoIncrementaStock(t *testing.T) {
	f := newFixture()

	out, err := f.uc.Execute(context.Background(), dto.CreateDonationRequest{
		Type:           entity.DonationTypeFood,
		Quantity:       ptr(5),
		Unit:           ptr("kg"),
		DonorID:        1,
		CollaboratorID: 2,
		ProductID:      ptr(int64(4)),
	})
	require.NoError(t, err)

	assert.Equal(t, 15, f.products.byID[4].InStock,
		"el stock debe pasar de 10 a 15 tras donar 5")
	require.Len(t, f.donations.created, 1)
	assert.Equal(t, entity.DonationTypeFood, out.Type)
	require.NotNil(t, out.Product, "la respuesta debe anidar el producto")
	assert.Equal(t, 15, out.Product.InStock, "la respuesta refleja el stock ya incrementado")
	assert.Equal(t, "María Souza", out.Donor.Name)
}

func TestCreateDonation_MoneyNoTocaStock(t *testing.T) {
	f := newFixture()
	amount := decimal.NewFromInt(250)

	out, err := f.uc.Execute(context.Background(), dto.CreateDonationRequest{
		Type:           entity.DonationTypeMoney,
		Amount:         &amount,
		Quantity:       ptr(3), // se descarta en la normalización
		Unit:           ptr("kg"),
		DonorID:        1,
		CollaboratorID: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, 10, f.products.byID[4].InStock, "una donación monetaria no mueve stock")
	assert.Equal(t, 0, f.products.updateCalls)
	assert.Nil(t, out.Quantity, "quantity se descarta en donaciones money")
	assert.Nil(t, out.Unit, "unit se descarta en donaciones money")
	require.NotNil(t, out.Amount)
	assert.True(t, amount.Equal(*out.Amount))
}

func TestCreateDonation_MoneySinAmount_Invalida(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), dto.CreateDonationRequest{
		Type:           entity.DonationTypeMoney,
		DonorID:        1,
		CollaboratorID: 2,
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr, "money sin amount debe ser error de validación")
	assert.Empty(t, f.donations.created, "la validación ocurre antes de cualquier escritura")
}

func TestCreateDonation_DonanteInexistente_404(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), dto.CreateDonationRequest{
		Type:           entity.DonationTypeFood,
		Quantity:       ptr(1),
		Unit:           ptr("kg"),
		DonorID:        99,
		CollaboratorID: 2,
		ProductID:      ptr(int64(4)),
	})

	var nferr *domain.EntityNotFoundError
	require.ErrorAs(t, err, &nferr)
	assert.Equal(t, "donor", nferr.Entity)
	assert.Empty(t, f.donations.created)
}

// El orden de resolución es fijo: si fallan varias referencias, gana el
// donante sobre el colaborador.
func TestCreateDonation_OrdenDeReferencias_DonanteGana(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), dto.CreateDonationRequest{
		Type:           entity.DonationTypeFood,
		Quantity:       ptr(1),
		Unit:           ptr("kg"),
		DonorID:        99,
		CollaboratorID: 88,
		ProductID:      ptr(int64(4)),
	})

	var nferr *domain.EntityNotFoundError
	require.ErrorAs(t, err, &nferr)
	assert.Equal(t, "donor", nferr.Entity, "el donante se verifica antes que el colaborador")
}

func TestCreateDonation_CampaignInexistente_404(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), dto.CreateDonationRequest{
		Type:           entity.DonationTypeCampaign,
		Quantity:       ptr(2),
		Unit:           ptr("kg"),
		DonorID:        1,
		CollaboratorID: 2,
		CampaignID:     ptr(int64(77)),
		ProductID:      ptr(int64(4)),
	})

	var nferr *domain.EntityNotFoundError
	require.ErrorAs(t, err, &nferr)
	assert.Equal(t, "campaign", nferr.Entity)
}

func TestCreateDonation_CampaignSinCampaignID_Invalida(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), dto.CreateDonationRequest{
		Type:           entity.DonationTypeCampaign,
		Quantity:       ptr(2),
		Unit:           ptr("kg"),
		DonorID:        1,
		CollaboratorID: 2,
		ProductID:      ptr(int64(4)),
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestCreateDonation_FalloEnStock_RevierteTodo(t *testing.T) {
	f := newFixture()
	f.products.stockErr = errors.New("deadlock detected")

	_, err := f.uc.Execute(context.Background(), dto.CreateDonationRequest{
		Type:           entity.DonationTypeFood,
		Quantity:       ptr(5),
		Unit:           ptr("kg"),
		DonorID:        1,
		CollaboratorID: 2,
		ProductID:      ptr(int64(4)),
	})

	require.Error(t, err)
	assert.Empty(t, f.donations.created, "el alta de la donación se revierte con el stock")
	assert.Equal(t, 10, f.products.byID[4].InStock, "el stock queda como estaba")
}
