package validation

import (
	"time"

	"github.com/ong-esperanza/donaciones-api/internal/application/dto"
	"github.com/ong-esperanza/donaciones-api/internal/domain"
	"github.com/ong-esperanza/donaciones-api/internal/domain/entity"
)

// DistributionInput distribución normalizada: fecha parseada y estado con
// su valor por defecto aplicado.
type DistributionInput struct {
	FoodBasketID   int64
	CollaboratorID int64
	FamilyID       int64
	CampaignID     *int64
	DeliveryDate   *time.Time
	Observations   *string
	Status         string
}

// CreateDistribution valida la entrada de una distribución de cesta.
// status por defecto es pending; delivery_date debe parsear como fecha.
func CreateDistribution(in dto.CreateDistributionRequest) (DistributionInput, []domain.Violation) {
	violations := Struct(in)

	out := DistributionInput{
		FoodBasketID:   in.FoodBasketID,
		CollaboratorID: in.CollaboratorID,
		FamilyID:       in.FamilyID,
		CampaignID:     in.CampaignID,
		Observations:   in.Observations,
		Status:         entity.DistributionStatusPending,
	}
	if in.Status != nil && *in.Status != "" {
		out.Status = *in.Status
	}
	if in.DeliveryDate != nil && *in.DeliveryDate != "" {
		t, ok := ParseDate(*in.DeliveryDate)
		if !ok {
			violations = append(violations, domain.Violation{
				Field: "delivery_date", Message: "debe ser una fecha válida",
			})
		} else {
			out.DeliveryDate = &t
		}
	}

	if len(violations) > 0 {
		return DistributionInput{}, violations
	}
	return out, nil
}
