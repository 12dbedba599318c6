package validation

import (
	"github.com/ong-esperanza/donaciones-api/internal/application/dto"
	"github.com/ong-esperanza/donaciones-api/internal/domain"
	"github.com/ong-esperanza/donaciones-api/internal/domain/entity"
)

// CreateDonor valida un donante candidato. CPF es obligatorio para persona
// física y CNPJ para persona jurídica.
func CreateDonor(in dto.CreateDonorRequest) (dto.CreateDonorRequest, []domain.Violation) {
	violations := Struct(in)

	if in.Type == entity.DonorTypePersonaFisica && (in.CPF == nil || *in.CPF == "") {
		violations = append(violations, domain.Violation{
			Field: "cpf", Message: "cpf es obligatorio para persona física",
		})
	}
	if in.Type == entity.DonorTypePersonaJuridica && (in.CNPJ == nil || *in.CNPJ == "") {
		violations = append(violations, domain.Violation{
			Field: "cnpj", Message: "cnpj es obligatorio para persona jurídica",
		})
	}

	if len(violations) > 0 {
		return in, violations
	}
	return in, nil
}
