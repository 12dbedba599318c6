package validation

import (
	"github.com/ong-esperanza/donaciones-api/internal/application/dto"
	"github.com/ong-esperanza/donaciones-api/internal/domain"
	"github.com/ong-esperanza/donaciones-api/internal/domain/entity"
)

// CreateDonation valida una donación candidata y devuelve el valor
// normalizado. Reglas cruzadas:
//   - money: amount obligatorio y distinto de cero
//   - resto: quantity, unit y product_id obligatorios
//   - campaign: además campaign_id obligatorio, amount o quantity presente,
//     y unit cuando hay quantity
//
// En donaciones monetarias quantity/unit/product_id se descartan en la
// normalización: el dinero no toca stock.
func CreateDonation(in dto.CreateDonationRequest) (dto.CreateDonationRequest, []domain.Violation) {
	violations := Struct(in)

	qty := 0
	if in.Quantity != nil {
		qty = *in.Quantity
	}
	hasAmount := in.Amount != nil && !in.Amount.IsZero()
	hasUnit := in.Unit != nil && *in.Unit != ""
	hasProduct := in.ProductID != nil && *in.ProductID > 0
	hasCampaign := in.CampaignID != nil && *in.CampaignID > 0

	switch in.Type {
	case entity.DonationTypeMoney:
		if !hasAmount {
			violations = append(violations, domain.Violation{
				Field: "amount", Message: "amount es obligatorio para donaciones de tipo money",
			})
		}
	case entity.DonationTypeFood, entity.DonationTypeClothing, entity.DonationTypeCampaign:
		if qty == 0 {
			violations = append(violations, domain.Violation{
				Field: "quantity", Message: "quantity es obligatorio para donaciones no monetarias",
			})
		}
		if !hasUnit {
			violations = append(violations, domain.Violation{
				Field: "unit", Message: "unit es obligatorio para donaciones no monetarias",
			})
		}
		if !hasProduct {
			violations = append(violations, domain.Violation{
				Field: "product_id", Message: "product_id es obligatorio para donaciones no monetarias",
			})
		}
	}

	if in.Type == entity.DonationTypeCampaign {
		if !hasCampaign {
			violations = append(violations, domain.Violation{
				Field: "campaign_id", Message: "campaign_id es obligatorio para donaciones de tipo campaign",
			})
		}
		if !hasAmount && qty == 0 {
			violations = append(violations, domain.Violation{
				Field: "amount", Message: "para donaciones de tipo campaign debe indicarse amount o quantity",
			})
		}
		if qty != 0 && !hasUnit {
			violations = append(violations, domain.Violation{
				Field: "unit", Message: "unit es obligatorio cuando se indica quantity",
			})
		}
	}

	if len(violations) > 0 {
		return in, violations
	}

	if in.Type == entity.DonationTypeMoney {
		in.Quantity = nil
		in.Unit = nil
		in.ProductID = nil
	}
	return in, nil
}
