package auth_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ong-esperanza/donaciones-api/internal/application/auth"
	"github.com/ong-esperanza/donaciones-api/internal/application/dto"
	"github.com/ong-esperanza/donaciones-api/internal/domain"
	"github.com/ong-esperanza/donaciones-api/internal/domain/entity"
	"github.com/ong-esperanza/donaciones-api/internal/domain/repository"
	"github.com/ong-esperanza/donaciones-api/pkg/jwt"
)

type fakeUsers struct {
	repository.UserRepository
	byEmail map[string]*entity.User
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return f.byEmail[strings.ToLower(email)], nil
}

func newLoginUseCase(t *testing.T, active bool) *auth.UseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreta123"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &fakeUsers{byEmail: map[string]*entity.User{
		"admin@ong.org": {
			ID: 1, Name: "Admin", Email: "admin@ong.org",
			PasswordHash: string(hash), Role: entity.RoleAdmin, IsActive: active,
		},
	}}
	tokens := jwt.NewManager("test-secret", time.Hour, "donaciones-api-test")
	return auth.NewUseCase(users, tokens, zerolog.Nop())
}

func TestLogin_CredencialesValidas(t *testing.T) {
	uc := newLoginUseCase(t, true)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "admin@ong.org", Password: "secreta123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "admin@ong.org", out.User.Email)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
}

// Usuario inexistente, contraseña incorrecta y usuario inactivo responden
// con el mismo error para no revelar qué emails existen.
func TestLogin_FallosIndistinguibles(t *testing.T) {
	cases := []struct {
		name   string
		active bool
		in     dto.LoginRequest
	}{
		{"usuario inexistente", true, dto.LoginRequest{Email: "nadie@ong.org", Password: "secreta123"}},
		{"contraseña incorrecta", true, dto.LoginRequest{Email: "admin@ong.org", Password: "equivocada"}},
		{"usuario inactivo", false, dto.LoginRequest{Email: "admin@ong.org", Password: "secreta123"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := newLoginUseCase(t, tc.active)
			_, err := uc.Login(context.Background(), tc.in)
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}

func TestLogin_EmailInvalido_Validacion(t *testing.T) {
	uc := newLoginUseCase(t, true)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "no-es-email", Password: "secreta123",
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
}
