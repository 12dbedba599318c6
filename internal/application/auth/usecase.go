// Package auth implementa el acceso por email y contraseña.
package auth

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ong-esperanza/donaciones-api/internal/application/dto"
	"github.com/ong-esperanza/donaciones-api/internal/application/validation"
	"github.com/ong-esperanza/donaciones-api/internal/domain"
	"github.com/ong-esperanza/donaciones-api/internal/domain/repository"
	"github.com/ong-esperanza/donaciones-api/pkg/jwt"
)

// UseCase login con emisión de JWT. Las credenciales inválidas y el usuario
// inexistente responden igual para no revelar qué emails existen.
type UseCase struct {
	users  repository.UserRepository
	tokens *jwt.Manager
	logger zerolog.Logger
}

func NewUseCase(users repository.UserRepository, tokens *jwt.Manager, logger zerolog.Logger) *UseCase {
	return &UseCase{users: users, tokens: tokens, logger: logger}
}

// Login verifica las credenciales y devuelve un token firmado.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if violations := validation.Struct(in); violations != nil {
		return nil, &domain.ValidationError{Violations: violations}
	}

	u, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("consultando usuario: %w", err)
	}
	if u == nil || !u.IsActive {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		uc.logger.Warn().Str("email", in.Email).Msg("intento de login fallido")
		return nil, domain.ErrUnauthorized
	}

	token, err := uc.tokens.Generate(u.ID, u.Role)
	if err != nil {
		return nil, fmt.Errorf("emitiendo token: %w", err)
	}

	return &dto.LoginResponse{Token: token, User: dto.FromUser(u)}, nil
}
