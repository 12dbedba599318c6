package validation

import (
	"github.com/ong-esperanza/donaciones-api/internal/application/dto"
	"github.com/ong-esperanza/donaciones-api/internal/domain"
)

// CreateFoodBasket valida la creación de una cesta con su composición.
func CreateFoodBasket(in dto.CreateFoodBasketRequest) (dto.CreateFoodBasketRequest, []domain.Violation) {
	violations := Struct(in)
	violations = append(violations, itemViolations(in.Products)...)
	if len(violations) > 0 {
		return in, violations
	}
	return in, nil
}

// UpdateFoodBasket valida la actualización de una cesta. Products vacío u
// omitido significa "no tocar la composición".
func UpdateFoodBasket(in dto.UpdateFoodBasketRequest) (dto.UpdateFoodBasketRequest, []domain.Violation) {
	violations := Struct(in)
	violations = append(violations, itemViolations(in.Products)...)
	if len(violations) > 0 {
		return in, violations
	}
	return in, nil
}

func itemViolations(items []dto.BasketItemInput) []domain.Violation {
	var out []domain.Violation
	for _, item := range items {
		if item.ProductID <= 0 {
			out = append(out, domain.Violation{
				Field: "products.product_id", Message: "debe ser un entero positivo",
			})
		}
		if item.Quantity < 1 {
			out = append(out, domain.Violation{
				Field: "products.quantity", Message: "debe ser como mínimo 1",
			})
		}
	}
	return out
}
