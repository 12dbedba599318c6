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

// FamilyUseCase CRUD de familias beneficiarias con borrado lógico.
type FamilyUseCase struct {
	families repository.FamilyRepository
}

func NewFamilyUseCase(families repository.FamilyRepository) *FamilyUseCase {
	return &FamilyUseCase{families: families}
}

// Create registra una familia. El CPF del responsable debe ser único.
func (uc *FamilyUseCase) Create(ctx context.Context, in dto.CreateFamilyRequest) (*dto.FamilyResponse, error) {
	in, violations := validation.CreateFamily(in)
	if violations != nil {
		return nil, &domain.ValidationError{Violations: violations}
	}

	existing, err := uc.families.GetByCPF(ctx, in.ResponsibleCPF)
	if err != nil {
		return nil, fmt.Errorf("verificando cpf: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("ya existe una familia con ese responsable: %w", domain.ErrDuplicate)
	}

	f := &entity.Family{
		ResponsibleName:    in.ResponsibleName,
		ResponsibleCPF:     in.ResponsibleCPF,
		StreetAddress:      in.StreetAddress,
		StreetNumber:       in.StreetNumber,
		StreetComplement:   in.StreetComplement,
		StreetNeighborhood: in.StreetNeighborhood,
		City:               in.City,
		State:              in.State,
		ZipCode:            in.ZipCode,
		Phone:              in.Phone,
		Email:              in.Email,
		MembersCount:       in.MembersCount,
		IncomeBracket:      in.IncomeBracket,
		Address:            in.Address,
		Observation:        in.Observation,
		SocialProgramID:    in.SocialProgramID,
		IsActive:           true,
		CreatedAt:          time.Now(),
	}
	if in.HasSocialPrograms != nil {
		f.HasSocialPrograms = *in.HasSocialPrograms
	}
	if in.IsActive != nil {
		f.IsActive = *in.IsActive
	}

	id, err := uc.families.Create(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("creando familia: %w", err)
	}
	f.ID = id

	out := dto.FromFamily(f)
	return &out, nil
}

// GetByID devuelve una familia por id.
func (uc *FamilyUseCase) GetByID(ctx context.Context, id int64) (*dto.FamilyResponse, error) {
	f, err := uc.families.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("consultando familia %d: %w", id, err)
	}
	if f == nil {
		return nil, domain.NotFound("family", fmt.Sprintf("familia %d no encontrada", id))
	}
	out := dto.FromFamily(f)
	return &out, nil
}

// List devuelve familias paginadas, filtrables por estado activo.
func (uc *FamilyUseCase) List(ctx context.Context, isActive *bool, page dto.PageRequest) (*dto.FamilyListResponse, error) {
	page.DefaultPage()

	items, err := uc.families.List(ctx, isActive, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listando familias: %w", err)
	}

	out := &dto.FamilyListResponse{
		Items: make([]dto.FamilyResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, f := range items {
		out.Items = append(out.Items, dto.FromFamily(f))
	}
	return out, nil
}

// Update actualiza los datos de contacto de una familia. El CPF del
// responsable es inmutable.
func (uc *FamilyUseCase) Update(ctx context.Context, id int64, in dto.UpdateFamilyRequest) (*dto.FamilyResponse, error) {
	if violations := validation.Struct(in); violations != nil {
		return nil, &domain.ValidationError{Violations: violations}
	}

	f, err := uc.families.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("consultando familia %d: %w", id, err)
	}
	if f == nil {
		return nil, domain.NotFound("family", fmt.Sprintf("familia %d no encontrada", id))
	}

	if in.ResponsibleName != nil {
		f.ResponsibleName = *in.ResponsibleName
	}
	if in.Phone != nil {
		f.Phone = *in.Phone
	}
	if in.Email != nil {
		f.Email = *in.Email
	}
	if in.MembersCount != nil {
		f.MembersCount = *in.MembersCount
	}
	if in.IncomeBracket != nil {
		f.IncomeBracket = *in.IncomeBracket
	}
	if in.Address != nil {
		f.Address = *in.Address
	}
	if in.Observation != nil {
		f.Observation = in.Observation
	}
	now := time.Now()
	f.UpdatedAt = &now

	if err := uc.families.Update(ctx, f); err != nil {
		return nil, fmt.Errorf("actualizando familia %d: %w", id, err)
	}

	out := dto.FromFamily(f)
	return &out, nil
}

// SetActive activa o desactiva una familia.
func (uc *FamilyUseCase) SetActive(ctx context.Context, id int64, active bool) error {
	f, err := uc.families.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("consultando familia %d: %w", id, err)
	}
	if f == nil {
		return domain.NotFound("family", fmt.Sprintf("familia %d no encontrada", id))
	}
	if err := uc.families.SetActive(ctx, id, active); err != nil {
		return fmt.Errorf("cambiando estado de la familia %d: %w", id, err)
	}
	return nil
}

// Delete marca una familia como eliminada. Su historial de entregas se
// conserva.
func (uc *FamilyUseCase) Delete(ctx context.Context, id int64) error {
	f, err := uc.families.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("consultando familia %d: %w", id, err)
	}
	if f == nil {
		return domain.NotFound("family", fmt.Sprintf("familia %d no encontrada", id))
	}
	if err := uc.families.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("eliminando familia %d: %w", id, err)
	}
	return nil
}
