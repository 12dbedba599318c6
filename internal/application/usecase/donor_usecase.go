package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ong-esperanza/donaciones-api/internal/application/dto"
	"github.com/ong-esperanza/donaciones-api/internal/application/validation"
	"github.com/ong-esperanza/donaciones-api/internal/domain"
	"github.com/ong-esperanza/donaciones-api/internal/domain/entity"
	"github.com/ong-esperanza/donaciones-api/internal/domain/repository"
)

// DonorUseCase CRUD de donantes con borrado lógico.
type DonorUseCase struct {
	donors repository.DonorRepository
}

func NewDonorUseCase(donors repository.DonorRepository) *DonorUseCase {
	return &DonorUseCase{donors: donors}
}

// Create registra un donante. El email debe ser único entre donantes no
// eliminados.
func (uc *DonorUseCase) Create(ctx context.Context, in dto.CreateDonorRequest) (*dto.DonorResponse, error) {
	in, violations := validation.CreateDonor(in)
	if violations != nil {
		return nil, &domain.ValidationError{Violations: violations}
	}

	existing, err := uc.donors.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("verificando email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("ya existe un donante con email %s: %w", in.Email, domain.ErrDuplicate)
	}

	d := &entity.Donor{
		Type:               in.Type,
		Name:               in.Name,
		Email:              in.Email,
		Phone:              in.Phone,
		CPF:                in.CPF,
		CNPJ:               in.CNPJ,
		StreetAddress:      in.StreetAddress,
		StreetNumber:       in.StreetNumber,
		StreetComplement:   in.StreetComplement,
		StreetNeighborhood: in.StreetNeighborhood,
		City:               in.City,
		State:              in.State,
		ZipCode:            in.ZipCode,
		Observation:        in.Observation,
		IsActive:           true,
		CreatedAt:          time.Now(),
	}

	id, err := uc.donors.Create(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("creando donante: %w", err)
	}
	d.ID = id

	out := dto.FromDonor(d)
	return &out, nil
}

// GetByID devuelve un donante por id.
func (uc *DonorUseCase) GetByID(ctx context.Context, id int64) (*dto.DonorResponse, error) {
	d, err := uc.donors.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("consultando donante %d: %w", id, err)
	}
	if d == nil {
		return nil, domain.NotFound("donor", fmt.Sprintf("donante %d no encontrado", id))
	}
	out := dto.FromDonor(d)
	return &out, nil
}

// List devuelve donantes paginados, filtrables por estado activo.
func (uc *DonorUseCase) List(ctx context.Context, isActive *bool, page dto.PageRequest) (*dto.DonorListResponse, error) {
	page.DefaultPage()

	items, err := uc.donors.List(ctx, isActive, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listando donantes: %w", err)
	}

	out := &dto.DonorListResponse{
		Items: make([]dto.DonorResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, d := range items {
		out.Items = append(out.Items, dto.FromDonor(d))
	}
	return out, nil
}

// Update actualiza los datos de contacto de un donante. Tipo, CPF y CNPJ
// son inmutables después del alta.
func (uc *DonorUseCase) Update(ctx context.Context, id int64, in dto.UpdateDonorRequest) (*dto.DonorResponse, error) {
	if violations := validation.Struct(in); violations != nil {
		return nil, &domain.ValidationError{Violations: violations}
	}

	d, err := uc.donors.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("consultando donante %d: %w", id, err)
	}
	if d == nil {
		return nil, domain.NotFound("donor", fmt.Sprintf("donante %d no encontrado", id))
	}

	if in.Email != nil && *in.Email != d.Email {
		existing, err := uc.donors.GetByEmail(ctx, *in.Email)
		if err != nil {
			return nil, fmt.Errorf("verificando email: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("ya existe un donante con email %s: %w", *in.Email, domain.ErrDuplicate)
		}
		d.Email = *in.Email
	}
	if in.Name != nil {
		d.Name = *in.Name
	}
	if in.Phone != nil {
		d.Phone = *in.Phone
	}
	if in.StreetAddress != nil {
		d.StreetAddress = *in.StreetAddress
	}
	if in.StreetNumber != nil {
		d.StreetNumber = *in.StreetNumber
	}
	if in.StreetComplement != nil {
		d.StreetComplement = in.StreetComplement
	}
	if in.StreetNeighborhood != nil {
		d.StreetNeighborhood = *in.StreetNeighborhood
	}
	if in.City != nil {
		d.City = *in.City
	}
	if in.State != nil {
		d.State = *in.State
	}
	if in.ZipCode != nil {
		d.ZipCode = *in.ZipCode
	}
	if in.Observation != nil {
		d.Observation = in.Observation
	}
	now := time.Now()
	d.UpdatedAt = &now

	if err := uc.donors.Update(ctx, d); err != nil {
		return nil, fmt.Errorf("actualizando donante %d: %w", id, err)
	}

	out := dto.FromDonor(d)
	return &out, nil
}

// SetActive activa o desactiva un donante.
func (uc *DonorUseCase) SetActive(ctx context.Context, id int64, active bool) error {
	d, err := uc.donors.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("consultando donante %d: %w", id, err)
	}
	if d == nil {
		return domain.NotFound("donor", fmt.Sprintf("donante %d no encontrado", id))
	}
	if err := uc.donors.SetActive(ctx, id, active); err != nil {
		return fmt.Errorf("cambiando estado del donante %d: %w", id, err)
	}
	return nil
}

// Delete marca un donante como eliminado. Sus donaciones históricas se
// conservan.
func (uc *DonorUseCase) Delete(ctx context.Context, id int64) error {
	d, err := uc.donors.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("consultando donante %d: %w", id, err)
	}
	if d == nil {
		return domain.NotFound("donor", fmt.Sprintf("donante %d no encontrado", id))
	}
	if err := uc.donors.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("eliminando donante %d: %w", id, err)
	}
	return nil
}
