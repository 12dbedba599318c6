package validation

import (
	"time"

	"github.com/ong-esperanza/donaciones-api/internal/application/dto"
	"github.com/ong-esperanza/donaciones-api/internal/domain"
)

// CampaignInput campaña normalizada con fechas parseadas.
type CampaignInput struct {
	Name         string
	Description  *string
	CampaignType string
	StartDate    *time.Time
	EndDate      *time.Time
	IsActive     bool
}

// CreateCampaign valida una campaña candidata y parsea sus fechas.
func CreateCampaign(in dto.CreateCampaignRequest) (CampaignInput, []domain.Violation) {
	violations := Struct(in)

	out := CampaignInput{
		Name:         in.Name,
		Description:  in.Description,
		CampaignType: in.CampaignType,
		IsActive:     true,
	}
	if in.IsActive != nil {
		out.IsActive = *in.IsActive
	}
	if in.StartDate != nil && *in.StartDate != "" {
		t, ok := ParseDate(*in.StartDate)
		if !ok {
			violations = append(violations, domain.Violation{Field: "start_date", Message: "debe ser una fecha válida"})
		} else {
			out.StartDate = &t
		}
	}
	if in.EndDate != nil && *in.EndDate != "" {
		t, ok := ParseDate(*in.EndDate)
		if !ok {
			violations = append(violations, domain.Violation{Field: "end_date", Message: "debe ser una fecha válida"})
		} else {
			out.EndDate = &t
		}
	}
	if out.StartDate != nil && out.EndDate != nil && out.EndDate.Before(*out.StartDate) {
		violations = append(violations, domain.Violation{Field: "end_date", Message: "no puede ser anterior a start_date"})
	}

	if len(violations) > 0 {
		return CampaignInput{}, violations
	}
	return out, nil
}
