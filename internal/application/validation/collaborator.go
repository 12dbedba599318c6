package validation

import (
	"time"

	"github.com/ong-esperanza/donaciones-api/internal/application/dto"
	"github.com/ong-esperanza/donaciones-api/internal/domain"
)

// CollaboratorInput colaborador normalizado con fechas parseadas.
type CollaboratorInput struct {
	Name          string
	Registration  string
	Email         string
	Phone         string
	AdmissionDate *time.Time
	DismissalDate *time.Time
	IsVolunteer   bool
	SectorID      *int64
	UserID        *int64
	IsActive      bool
}

// CreateCollaborator valida un colaborador candidato y parsea sus fechas.
func CreateCollaborator(in dto.CreateCollabRequest) (CollaboratorInput, []domain.Violation) {
	violations := Struct(in)

	out := CollaboratorInput{
		Name:         in.Name,
		Registration: in.Registration,
		Email:        in.Email,
		Phone:        in.Phone,
		SectorID:     in.SectorID,
		UserID:       in.UserID,
		IsActive:     true,
	}
	if in.IsVolunteer != nil {
		out.IsVolunteer = *in.IsVolunteer
	}
	if in.IsActive != nil {
		out.IsActive = *in.IsActive
	}
	if in.AdmissionDate != nil && *in.AdmissionDate != "" {
		t, ok := ParseDate(*in.AdmissionDate)
		if !ok {
			violations = append(violations, domain.Violation{
				Field: "admission_date", Message: "debe ser una fecha ISO válida",
			})
		} else {
			out.AdmissionDate = &t
		}
	}
	if in.DismissalDate != nil && *in.DismissalDate != "" {
		t, ok := ParseDate(*in.DismissalDate)
		if !ok {
			violations = append(violations, domain.Violation{
				Field: "dismissal_date", Message: "debe ser una fecha ISO válida",
			})
		} else {
			out.DismissalDate = &t
		}
	}

	if len(violations) > 0 {
		return CollaboratorInput{}, violations
	}
	return out, nil
}
