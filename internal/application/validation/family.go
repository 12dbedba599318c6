package validation

import (
	"github.com/ong-esperanza/donaciones-api/internal/application/dto"
	"github.com/ong-esperanza/donaciones-api/internal/domain"
)

// CreateFamily valida una familia candidata. social_program_id es obligatorio
// cuando has_social_programs es true.
func CreateFamily(in dto.CreateFamilyRequest) (dto.CreateFamilyRequest, []domain.Violation) {
	violations := Struct(in)

	hasPrograms := in.HasSocialPrograms != nil && *in.HasSocialPrograms
	if hasPrograms && (in.SocialProgramID == nil || *in.SocialProgramID <= 0) {
		violations = append(violations, domain.Violation{
			Field: "social_program_id", Message: "social_program_id es obligatorio cuando has_social_programs es true",
		})
	}

	if len(violations) > 0 {
		return in, violations
	}
	return in, nil
}
