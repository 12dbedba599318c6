package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ong-esperanza/donaciones-api/internal/application/dto"
	"github.com/ong-esperanza/donaciones-api/internal/application/validation"
	"github.com/ong-esperanza/donaciones-api/internal/domain"
	"github.com/ong-esperanza/donaciones-api/internal/domain/entity"
	"github.com/ong-esperanza/donaciones-api/internal/domain/repository"
)

// UserUseCase gestión de usuarios del sistema. Las contraseñas se guardan
// como hash bcrypt y nunca salen en respuestas.
type UserUseCase struct {
	users repository.UserRepository
}

func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// Create registra un usuario con email único. El rol por defecto es
// collaborator.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if violations := validation.Struct(in); violations != nil {
		return nil, &domain.ValidationError{Violations: violations}
	}

	existing, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("verificando email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("email %s: %w", in.Email, domain.ErrEmailAlreadyExists)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("generando hash de contraseña: %w", err)
	}

	u := &entity.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         entity.RoleCollaborator,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if in.Role != "" {
		u.Role = in.Role
	}

	id, err := uc.users.Create(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("creando usuario: %w", err)
	}
	u.ID = id

	out := dto.FromUser(u)
	return &out, nil
}

// GetByID devuelve un usuario por id.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	u, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("consultando usuario %d: %w", id, err)
	}
	if u == nil {
		return nil, domain.NotFound("user", fmt.Sprintf("usuario %d no encontrado", id))
	}
	out := dto.FromUser(u)
	return &out, nil
}

// List devuelve usuarios paginados.
func (uc *UserUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.UserListResponse, error) {
	page.DefaultPage()

	items, err := uc.users.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listando usuarios: %w", err)
	}

	out := &dto.UserListResponse{
		Items: make([]dto.UserResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, u := range items {
		out.Items = append(out.Items, dto.FromUser(u))
	}
	return out, nil
}

// Update actualiza nombre, contraseña, rol o estado de un usuario.
func (uc *UserUseCase) Update(ctx context.Context, id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if violations := validation.Struct(in); violations != nil {
		return nil, &domain.ValidationError{Violations: violations}
	}

	u, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("consultando usuario %d: %w", id, err)
	}
	if u == nil {
		return nil, domain.NotFound("user", fmt.Sprintf("usuario %d no encontrado", id))
	}

	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("generando hash de contraseña: %w", err)
		}
		u.PasswordHash = string(hash)
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
	now := time.Now()
	u.UpdatedAt = &now

	if err := uc.users.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("actualizando usuario %d: %w", id, err)
	}

	out := dto.FromUser(u)
	return &out, nil
}
