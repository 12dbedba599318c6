package validation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ong-esperanza/donaciones-api/internal/application/dto"
	"github.com/ong-esperanza/donaciones-api/internal/application/validation"
	"github.com/ong-esperanza/donaciones-api/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func fields(violations []domain.Violation) []string {
	out := make([]string, 0, len(violations))
	for _, v := range violations {
		out = append(out, v.Field)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Reglas cruzadas por tipo de donación
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateDonation_ReglasCruzadas(t *testing.T) {
	amount := decimal.NewFromInt(100)
	zero := decimal.Zero

	cases := []struct {
		name       string
		in         dto.CreateDonationRequest
		wantFields []string
	}{
		{
			name: "money con amount es válida",
			in: dto.CreateDonationRequest{
				Type: "money", Amount: &amount, DonorID: 1, CollaboratorID: 2,
			},
		},
		{
			name: "money sin amount falla",
			in: dto.CreateDonationRequest{
				Type: "money", DonorID: 1, CollaboratorID: 2,
			},
			wantFields: []string{"amount"},
		},
		{
			name: "money con amount cero falla",
			in: dto.CreateDonationRequest{
				Type: "money", Amount: &zero, DonorID: 1, CollaboratorID: 2,
			},
			wantFields: []string{"amount"},
		},
		{
			name: "food completa es válida",
			in: dto.CreateDonationRequest{
				Type: "food", Quantity: ptr(5), Unit: ptr("kg"),
				DonorID: 1, CollaboratorID: 2, ProductID: ptr(int64(4)),
			},
		},
		{
			name: "food sin quantity, unit ni product acumula las tres violaciones",
			in: dto.CreateDonationRequest{
				Type: "food", DonorID: 1, CollaboratorID: 2,
			},
			wantFields: []string{"quantity", "unit", "product_id"},
		},
		{
			name: "clothing sin product falla",
			in: dto.CreateDonationRequest{
				Type: "clothing", Quantity: ptr(3), Unit: ptr("un"),
				DonorID: 1, CollaboratorID: 2,
			},
			wantFields: []string{"product_id"},
		},
		{
			name: "campaign sin campaign_id falla",
			in: dto.CreateDonationRequest{
				Type: "campaign", Quantity: ptr(2), Unit: ptr("kg"),
				DonorID: 1, CollaboratorID: 2, ProductID: ptr(int64(4)),
			},
			wantFields: []string{"campaign_id"},
		},
		{
			name: "campaign completa es válida",
			in: dto.CreateDonationRequest{
				Type: "campaign", Quantity: ptr(2), Unit: ptr("kg"),
				DonorID: 1, CollaboratorID: 2,
				CampaignID: ptr(int64(3)), ProductID: ptr(int64(4)),
			},
		},
		{
			name: "tipo desconocido falla",
			in: dto.CreateDonationRequest{
				Type: "services", DonorID: 1, CollaboratorID: 2,
			},
			wantFields: []string{"type"},
		},
		{
			name: "unidad desconocida falla",
			in: dto.CreateDonationRequest{
				Type: "food", Quantity: ptr(5), Unit: ptr("toneladas"),
				DonorID: 1, CollaboratorID: 2, ProductID: ptr(int64(4)),
			},
			wantFields: []string{"unit"},
		},
		{
			name: "sin donor ni collaborator falla",
			in: dto.CreateDonationRequest{
				Type: "money", Amount: &amount,
			},
			wantFields: []string{"donor_id", "collaborator_id"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, violations := validation.CreateDonation(tc.in)
			if len(tc.wantFields) == 0 {
				assert.Nil(t, violations, "no debe haber violaciones")
				return
			}
			got := fields(violations)
			for _, want := range tc.wantFields {
				assert.Contains(t, got, want, "debe reportarse el campo %s", want)
			}
		})
	}
}

// En donaciones money los campos de especie se descartan: el dinero nunca
// toca stock.
func TestCreateDonation_MoneyNormalizaCamposDeEspecie(t *testing.T) {
	amount := decimal.NewFromInt(50)

	out, violations := validation.CreateDonation(dto.CreateDonationRequest{
		Type:           "money",
		Amount:         &amount,
		Quantity:       ptr(3),
		Unit:           ptr("kg"),
		ProductID:      ptr(int64(4)),
		DonorID:        1,
		CollaboratorID: 2,
	})
	require.Nil(t, violations)

	assert.Nil(t, out.Quantity)
	assert.Nil(t, out.Unit)
	assert.Nil(t, out.ProductID)
	require.NotNil(t, out.Amount)
	assert.True(t, amount.Equal(*out.Amount))
}

// ──────────────────────────────────────────────────────────────────────────────
// ParseDate
// ──────────────────────────────────────────────────────────────────────────────

func TestParseDate(t *testing.T) {
	t.Run("RFC3339", func(t *testing.T) {
		got, ok := validation.ParseDate("2026-08-29T10:30:00Z")
		require.True(t, ok)
		assert.Equal(t, 2026, got.Year())
		assert.Equal(t, 10, got.Hour())
	})

	t.Run("fecha simple", func(t *testing.T) {
		got, ok := validation.ParseDate("2026-08-29")
		require.True(t, ok)
		assert.Equal(t, 29, got.Day())
	})

	t.Run("texto arbitrario", func(t *testing.T) {
		_, ok := validation.ParseDate("ayer")
		assert.False(t, ok)
	})

	t.Run("vacía", func(t *testing.T) {
		_, ok := validation.ParseDate("")
		assert.False(t, ok)
	})
}
