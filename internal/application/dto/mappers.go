package dto

import "github.com/ong-esperanza/donaciones-api/internal/domain/entity"

// Mapeos entidad → respuesta compartidos por los casos de uso.

// FromDonor mapea un Donor a su respuesta.
func FromDonor(d *entity.Donor) DonorResponse {
	return DonorResponse{
		ID:                 d.ID,
		Type:               d.Type,
		Name:               d.Name,
		Email:              d.Email,
		Phone:              d.Phone,
		CPF:                d.CPF,
		CNPJ:               d.CNPJ,
		StreetAddress:      d.StreetAddress,
		StreetNumber:       d.StreetNumber,
		StreetComplement:   d.StreetComplement,
		StreetNeighborhood: d.StreetNeighborhood,
		City:               d.City,
		State:              d.State,
		ZipCode:            d.ZipCode,
		Observation:        d.Observation,
		IsActive:           d.IsActive,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

// FromCollaborator mapea un Collaborator a su respuesta.
func FromCollaborator(c *entity.Collaborator) CollabResponse {
	return CollabResponse{
		ID:            c.ID,
		Name:          c.Name,
		Registration:  c.Registration,
		Email:         c.Email,
		Phone:         c.Phone,
		AdmissionDate: c.AdmissionDate,
		DismissalDate: c.DismissalDate,
		IsVolunteer:   c.IsVolunteer,
		SectorID:      c.SectorID,
		UserID:        c.UserID,
		IsActive:      c.IsActive,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// FromFamily mapea una Family a su respuesta.
func FromFamily(f *entity.Family) FamilyResponse {
	return FamilyResponse{
		ID:                 f.ID,
		ResponsibleName:    f.ResponsibleName,
		ResponsibleCPF:     f.ResponsibleCPF,
		StreetAddress:      f.StreetAddress,
		StreetNumber:       f.StreetNumber,
		StreetComplement:   f.StreetComplement,
		StreetNeighborhood: f.StreetNeighborhood,
		City:               f.City,
		State:              f.State,
		ZipCode:            f.ZipCode,
		Phone:              f.Phone,
		Email:              f.Email,
		MembersCount:       f.MembersCount,
		IncomeBracket:      f.IncomeBracket,
		Address:            f.Address,
		Observation:        f.Observation,
		HasSocialPrograms:  f.HasSocialPrograms,
		SocialProgramID:    f.SocialProgramID,
		IsActive:           f.IsActive,
		CreatedAt:          f.CreatedAt,
		UpdatedAt:          f.UpdatedAt,
	}
}

// FromCampaign mapea una Campaign a su respuesta.
func FromCampaign(c *entity.Campaign) CampaignResponse {
	return CampaignResponse{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		CampaignType: c.CampaignType,
		StartDate:    c.StartDate,
		EndDate:      c.EndDate,
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// FromProduct mapea un Product a su respuesta.
func FromProduct(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Unit:         p.Unit,
		MinimumStock: p.MinimumStock,
		InStock:      p.InStock,
		IsActive:     p.IsActive,
		CategoryID:   p.CategoryID,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// FromUser mapea un User a su respuesta (sin hash de contraseña).
func FromUser(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// FromDistribution mapea una FoodBasketDistribution a su respuesta.
func FromDistribution(d *entity.FoodBasketDistribution) DistributionResponse {
	return DistributionResponse{
		ID:             d.ID,
		FoodBasketID:   d.FoodBasketID,
		CollaboratorID: d.CollaboratorID,
		FamilyID:       d.FamilyID,
		CampaignID:     d.CampaignID,
		Status:         d.Status,
		DeliveryDate:   d.DeliveryDate,
		Observations:   d.Observations,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

// FromDonationItem mapea una Donation a su fila plana de listado.
func FromDonationItem(d *entity.Donation) DonationItem {
	return DonationItem{
		ID:             d.ID,
		Type:           d.Type,
		Amount:         d.Amount,
		Quantity:       d.Quantity,
		Unit:           d.Unit,
		Observations:   d.Observations,
		DonorID:        d.DonorID,
		CollaboratorID: d.CollaboratorID,
		CampaignID:     d.CampaignID,
		ProductID:      d.ProductID,
		CreatedAt:      d.CreatedAt,
	}
}
