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

// CollaboratorUseCase CRUD de colaboradores con borrado lógico.
type CollaboratorUseCase struct {
	collaborators repository.CollaboratorRepository
	sectors       repository.SectorRepository
}

func NewCollaboratorUseCase(collaborators repository.CollaboratorRepository, sectors repository.SectorRepository) *CollaboratorUseCase {
	return &CollaboratorUseCase{collaborators: collaborators, sectors: sectors}
}

// Create registra un colaborador. Matrícula y email deben ser únicos.
func (uc *CollaboratorUseCase) Create(ctx context.Context, in dto.CreateCollabRequest) (*dto.CollabResponse, error) {
	input, violations := validation.CreateCollaborator(in)
	if violations != nil {
		return nil, &domain.ValidationError{Violations: violations}
	}

	if existing, err := uc.collaborators.GetByRegistration(ctx, input.Registration); err != nil {
		return nil, fmt.Errorf("verificando matrícula: %w", err)
	} else if existing != nil {
		return nil, fmt.Errorf("ya existe un colaborador con matrícula %s: %w", input.Registration, domain.ErrDuplicate)
	}
	if existing, err := uc.collaborators.GetByEmail(ctx, input.Email); err != nil {
		return nil, fmt.Errorf("verificando email: %w", err)
	} else if existing != nil {
		return nil, fmt.Errorf("ya existe un colaborador con email %s: %w", input.Email, domain.ErrDuplicate)
	}
	if input.SectorID != nil {
		sector, err := uc.sectors.GetByID(ctx, *input.SectorID)
		if err != nil {
			return nil, fmt.Errorf("verificando sector: %w", err)
		}
		if sector == nil {
			return nil, domain.NotFound("sector", fmt.Sprintf("sector %d no encontrado", *input.SectorID))
		}
	}

	c := &entity.Collaborator{
		Name:          input.Name,
		Registration:  input.Registration,
		Email:         input.Email,
		Phone:         input.Phone,
		AdmissionDate: input.AdmissionDate,
		DismissalDate: input.DismissalDate,
		IsVolunteer:   input.IsVolunteer,
		SectorID:      input.SectorID,
		UserID:        input.UserID,
		IsActive:      input.IsActive,
		CreatedAt:     time.Now(),
	}

	id, err := uc.collaborators.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("creando colaborador: %w", err)
	}
	c.ID = id

	out := dto.FromCollaborator(c)
	return &out, nil
}

// GetByID devuelve un colaborador por id.
func (uc *CollaboratorUseCase) GetByID(ctx context.Context, id int64) (*dto.CollabResponse, error) {
	c, err := uc.collaborators.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("consultando colaborador %d: %w", id, err)
	}
	if c == nil {
		return nil, domain.NotFound("collaborator", fmt.Sprintf("colaborador %d no encontrado", id))
	}
	out := dto.FromCollaborator(c)
	return &out, nil
}

// List devuelve colaboradores paginados, filtrables por estado activo.
func (uc *CollaboratorUseCase) List(ctx context.Context, isActive *bool, page dto.PageRequest) (*dto.CollabListResponse, error) {
	page.DefaultPage()

	items, err := uc.collaborators.List(ctx, isActive, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listando colaboradores: %w", err)
	}

	out := &dto.CollabListResponse{
		Items: make([]dto.CollabResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, c := range items {
		out.Items = append(out.Items, dto.FromCollaborator(c))
	}
	return out, nil
}

// Update actualiza un colaborador. La matrícula es inmutable.
func (uc *CollaboratorUseCase) Update(ctx context.Context, id int64, in dto.UpdateCollabRequest) (*dto.CollabResponse, error) {
	if violations := validation.Struct(in); violations != nil {
		return nil, &domain.ValidationError{Violations: violations}
	}

	c, err := uc.collaborators.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("consultando colaborador %d: %w", id, err)
	}
	if c == nil {
		return nil, domain.NotFound("collaborator", fmt.Sprintf("colaborador %d no encontrado", id))
	}

	if in.Email != nil && *in.Email != c.Email {
		existing, err := uc.collaborators.GetByEmail(ctx, *in.Email)
		if err != nil {
			return nil, fmt.Errorf("verificando email: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("ya existe un colaborador con email %s: %w", *in.Email, domain.ErrDuplicate)
		}
		c.Email = *in.Email
	}
	if in.SectorID != nil {
		sector, err := uc.sectors.GetByID(ctx, *in.SectorID)
		if err != nil {
			return nil, fmt.Errorf("verificando sector: %w", err)
		}
		if sector == nil {
			return nil, domain.NotFound("sector", fmt.Sprintf("sector %d no encontrado", *in.SectorID))
		}
		c.SectorID = in.SectorID
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Phone != nil {
		c.Phone = *in.Phone
	}
	if in.IsVolunteer != nil {
		c.IsVolunteer = *in.IsVolunteer
	}
	if in.AdmissionDate != nil && *in.AdmissionDate != "" {
		t, ok := validation.ParseDate(*in.AdmissionDate)
		if !ok {
			return nil, &domain.ValidationError{Violations: []domain.Violation{
				{Field: "admission_date", Message: "debe ser una fecha ISO válida"},
			}}
		}
		c.AdmissionDate = &t
	}
	if in.DismissalDate != nil && *in.DismissalDate != "" {
		t, ok := validation.ParseDate(*in.DismissalDate)
		if !ok {
			return nil, &domain.ValidationError{Violations: []domain.Violation{
				{Field: "dismissal_date", Message: "debe ser una fecha ISO válida"},
			}}
		}
		c.DismissalDate = &t
	}
	now := time.Now()
	c.UpdatedAt = &now

	if err := uc.collaborators.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("actualizando colaborador %d: %w", id, err)
	}

	out := dto.FromCollaborator(c)
	return &out, nil
}

// SetActive activa o desactiva un colaborador.
func (uc *CollaboratorUseCase) SetActive(ctx context.Context, id int64, active bool) error {
	c, err := uc.collaborators.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("consultando colaborador %d: %w", id, err)
	}
	if c == nil {
		return domain.NotFound("collaborator", fmt.Sprintf("colaborador %d no encontrado", id))
	}
	if err := uc.collaborators.SetActive(ctx, id, active); err != nil {
		return fmt.Errorf("cambiando estado del colaborador %d: %w", id, err)
	}
	return nil
}

// Delete marca un colaborador como eliminado.
func (uc *CollaboratorUseCase) Delete(ctx context.Context, id int64) error {
	c, err := uc.collaborators.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("consultando colaborador %d: %w", id, err)
	}
	if c == nil {
		return domain.NotFound("collaborator", fmt.Sprintf("colaborador %d no encontrado", id))
	}
	if err := uc.collaborators.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("eliminando colaborador %d: %w", id, err)
	}
	return nil
}
